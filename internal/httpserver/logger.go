// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

// Logger receives the lifecycle messages of a server.
type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
