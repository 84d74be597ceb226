// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package pprof

import (
	"context"

	"github.com/astryx-hash/astryx/internal/httpserver"
)

// Runner runs until the context is canceled, closing ready once
// it serves and sending its exit error on done.
type Runner interface {
	Run(ctx context.Context, ready chan<- struct{}, done chan<- error)
}

// Logger is the logger used by the pprof http server.
type Logger = httpserver.Logger
