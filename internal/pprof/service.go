// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package pprof

import (
	"context"
	"errors"
	"runtime"
)

// Settings are the settings of the pprof service.
type Settings struct {
	// Address is the listening address of the pprof http server.
	Address string
	// BlockProfileRate is passed to runtime.SetBlockProfileRate.
	// Zero disables block profiling.
	BlockProfileRate int
	// MutexProfileRate is passed to runtime.SetMutexProfileFraction.
	// Zero disables mutex profiling.
	MutexProfileRate int
}

// ErrServerDoneBeforeReady is returned by Start if the server
// exits without error before serving.
var ErrServerDoneBeforeReady = errors.New("server terminated before being ready")

// Service runs the pprof http server alongside a command.
type Service struct {
	settings Settings
	server   Runner
	cancel   context.CancelFunc
	done     chan error
}

// NewService creates a pprof service listening on settings.Address.
func NewService(settings Settings, logger Logger) *Service {
	return &Service{
		settings: settings,
		server:   NewServer(settings.Address, logger),
		done:     make(chan error),
	}
}

// Start applies the profiling rates and starts the server,
// returning once it serves or failed to.
func (s *Service) Start() (err error) {
	runtime.SetBlockProfileRate(s.settings.BlockProfileRate)
	runtime.SetMutexProfileFraction(s.settings.MutexProfileRate)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		return nil
	case err := <-s.done:
		cancel()
		resetProfileRates()
		if err != nil {
			return err
		}
		return ErrServerDoneBeforeReady
	}
}

// Stop stops the server and disables block and mutex profiling.
func (s *Service) Stop() (err error) {
	s.cancel()
	err = <-s.done
	resetProfileRates()
	return err
}

func resetProfileRates() {
	runtime.SetBlockProfileRate(0)
	runtime.SetMutexProfileFraction(0)
}
