// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import "time"

const (
	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = time.Second
	defaultShutdownTimeout   = 3 * time.Second
)

// Option overrides one of the server timeouts.
type Option func(t *timeouts)

type timeouts struct {
	read       time.Duration
	readHeader time.Duration
	shutdown   time.Duration
}

// newTimeouts applies the options over the default timeouts,
// ignoring non positive durations.
func newTimeouts(options []Option) timeouts {
	t := timeouts{
		read:       defaultReadTimeout,
		readHeader: defaultReadHeaderTimeout,
		shutdown:   defaultShutdownTimeout,
	}
	for _, option := range options {
		option(&t)
	}
	return t
}

// WithReadTimeout sets the request read timeout, 10s by default.
func WithReadTimeout(d time.Duration) Option {
	return func(t *timeouts) {
		if d > 0 {
			t.read = d
		}
	}
}

// WithReadHeaderTimeout sets the request header read timeout, 1s by default.
func WithReadHeaderTimeout(d time.Duration) Option {
	return func(t *timeouts) {
		if d > 0 {
			t.readHeader = d
		}
	}
}

// WithShutdownTimeout sets how long in-flight requests get
// once the server is asked to stop, 3s by default.
func WithShutdownTimeout(d time.Duration) Option {
	return func(t *timeouts) {
		if d > 0 {
			t.shutdown = d
		}
	}
}
