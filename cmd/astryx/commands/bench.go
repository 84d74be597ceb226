// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package commands

import (
	"crypto/rand"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/astryx-hash/astryx/config"
	"github.com/astryx-hash/astryx/internal/bench"
	"github.com/astryx-hash/astryx/internal/metrics"
	"github.com/astryx-hash/astryx/internal/pprof"
	"github.com/spf13/cobra"
)

func newBenchCommand(s *settings) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark Astryx against SHA3-256, BLAKE2b-256, BLAKE3 and xxHash64",
		Long: `The bench command hashes a random message repeatedly with every algorithm
and reports the median timing sample, hashes per second and MB per second.
Example:
	astryx bench --size 1024 --iterations 2000 --samples 5
	astryx bench --metrics-address localhost:9876
	astryx bench --iterations 100000 --pprof-address localhost:6060`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execBench(cmd, s.config)
		},
	}

	defaults := s.config
	flags := cmd.Flags()
	if err := addIntFlagBindViper(s.viper, flags,
		"size", "",
		defaults.Bench.Size,
		"Message size in bytes",
		"bench.size"); err != nil {
		return nil, fmt.Errorf("failed to add --size flag: %w", err)
	}
	if err := addIntFlagBindViper(s.viper, flags,
		"iterations", "",
		defaults.Bench.Iterations,
		"Hashes per timing sample",
		"bench.iterations"); err != nil {
		return nil, fmt.Errorf("failed to add --iterations flag: %w", err)
	}
	if err := addIntFlagBindViper(s.viper, flags,
		"samples", "",
		defaults.Bench.Samples,
		"Timing samples per algorithm",
		"bench.samples"); err != nil {
		return nil, fmt.Errorf("failed to add --samples flag: %w", err)
	}
	if err := addStringFlagBindViper(s.viper, flags,
		"metrics-address",
		defaults.Metrics.Address,
		"Serve the benchmark metrics on this address until interrupted",
		"metrics.address"); err != nil {
		return nil, fmt.Errorf("failed to add --metrics-address flag: %w", err)
	}

	if err := addStringFlagBindViper(s.viper, flags,
		"pprof-address",
		defaults.Pprof.Address,
		"Serve the runtime profiles on this address while benchmarking",
		"pprof.address"); err != nil {
		return nil, fmt.Errorf("failed to add --pprof-address flag: %w", err)
	}

	return cmd, nil
}

// execBench runs the benchmark and, if a metrics address is configured,
// serves the collected metrics until the process is interrupted.
func execBench(cmd *cobra.Command, config *cfg.Config) (err error) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewCollector()

	var server *metrics.Server
	if config.Metrics.Address != "" {
		server = metrics.NewServer(config.Metrics.Address, collector.Gatherer())
		if err := server.Start(); err != nil {
			return fmt.Errorf("starting metrics server: %w", err)
		}
		defer func() {
			stopErr := server.Stop()
			if err == nil {
				err = stopErr
			}
		}()
	}

	if config.Pprof.Address != "" {
		profiler := pprof.NewService(pprof.Settings{
			Address:          config.Pprof.Address,
			BlockProfileRate: config.Pprof.BlockProfileRate,
			MutexProfileRate: config.Pprof.MutexProfileRate,
		}, logger)
		if err := profiler.Start(); err != nil {
			return fmt.Errorf("starting pprof server: %w", err)
		}
		defer func() {
			stopErr := profiler.Stop()
			if err == nil {
				err = stopErr
			}
		}()
	}

	message := make([]byte, config.Bench.Size)
	if _, err := rand.Read(message); err != nil {
		return fmt.Errorf("generating message: %w", err)
	}

	benchSettings := bench.Settings{
		Size:       config.Bench.Size,
		Iterations: config.Bench.Iterations,
		Samples:    config.Bench.Samples,
	}
	logger.Debugf("benchmarking %d algorithms", len(bench.Algorithms()))

	results, err := bench.Run(ctx, message, benchSettings, bench.Algorithms(), collector)
	if writeErr := bench.WriteTable(cmd.OutOrStdout(), benchSettings, results); writeErr != nil && err == nil {
		err = writeErr
	}
	if err != nil {
		return err
	}

	if server != nil {
		logger.Infof("benchmark done, serving metrics at %s until interrupted", server.Address())
		<-ctx.Done()
	}

	return nil
}
