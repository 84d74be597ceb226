// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package log

import "io"

// Option configures a logger on creation or on Patch.
type Option func(o *options)

// options only holds what was set, so a child logger or
// a patch leaves the other settings untouched.
type options struct {
	writer io.Writer
	level  *Level
	caller *bool
	fields []field
}

func newOptions(opts []Option) (o options) {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// SetLevel sets the minimum level written.
func SetLevel(level Level) Option {
	return func(o *options) { o.level = &level }
}

// SetWriter sets the writer lines are written to.
func SetWriter(w io.Writer) Option {
	return func(o *options) { o.writer = w }
}

// SetCaller enables or disables the file:line of the log call on each line.
func SetCaller(enabled bool) Option {
	return func(o *options) { o.caller = &enabled }
}

// AddContext appends key=value to each line. Setting a key again
// replaces its value.
func AddContext(key, value string) Option {
	return func(o *options) { o.fields = withField(o.fields, key, value) }
}

type field struct {
	key   string
	value string
}

func withField(fields []field, key, value string) []field {
	for i := range fields {
		if fields[i].key == key {
			fields[i].value = value
			return fields
		}
	}
	return append(fields, field{key: key, value: value})
}
