// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package log

import "os"

// global writes to stderr, leaving stdout to command output.
var global = New(SetWriter(os.Stderr))

// NewFromGlobal derives a logger from the global logger.
func NewFromGlobal(opts ...Option) *Logger {
	return global.New(opts...)
}

// Patch applies the options to the global logger and every logger
// derived from it.
func Patch(opts ...Option) {
	global.Patch(opts...)
}

// PatchLevel sets the level of the global logger and every logger
// derived from it.
func PatchLevel(level Level) {
	global.PatchLevel(level)
}
