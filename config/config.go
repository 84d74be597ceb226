// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"errors"
	"fmt"

	"github.com/astryx-hash/astryx/internal/log"
	"github.com/astryx-hash/astryx/lib/astryx"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "info"
	// DefaultBits is the default digest width
	DefaultBits = astryx.Bits256
	// DefaultBenchSize is the default benchmark message size in bytes
	DefaultBenchSize = 1024
	// DefaultBenchIterations is the default number of hashes per timing sample
	DefaultBenchIterations = 2000
	// DefaultBenchSamples is the default number of timing samples
	DefaultBenchSamples = 5
)

// ErrInvalidConfig is returned when the configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the configuration of the astryx command.
type Config struct {
	Log     LogConfig     `mapstructure:"log" toml:"log"`
	Digest  DigestConfig  `mapstructure:"digest" toml:"digest"`
	Bench   BenchConfig   `mapstructure:"bench" toml:"bench"`
	Metrics MetricsConfig `mapstructure:"metrics" toml:"metrics"`
	Pprof   PprofConfig   `mapstructure:"pprof" toml:"pprof"`
}

// LogConfig is the logging configuration
type LogConfig struct {
	Level string `mapstructure:"level" toml:"level" validate:"required"`
}

// DigestConfig is the configuration of the hash command
type DigestConfig struct {
	Bits  int  `mapstructure:"bits" toml:"bits"`
	Strip bool `mapstructure:"strip" toml:"strip"`
}

// BenchConfig is the configuration of the bench command
type BenchConfig struct {
	Size       int `mapstructure:"size" toml:"size" validate:"gte=0"`
	Iterations int `mapstructure:"iterations" toml:"iterations" validate:"gt=0"`
	Samples    int `mapstructure:"samples" toml:"samples" validate:"gt=0"`
}

// MetricsConfig is the configuration of the metrics server.
// An empty address disables the server.
type MetricsConfig struct {
	Address string `mapstructure:"address" toml:"address" validate:"omitempty,hostname_port"`
}

// PprofConfig is the configuration of the pprof server.
// An empty address disables the server.
type PprofConfig struct {
	Address          string `mapstructure:"address" toml:"address" validate:"omitempty,hostname_port"`
	BlockProfileRate int    `mapstructure:"block-profile-rate" toml:"block-profile-rate" validate:"gte=0"`
	MutexProfileRate int    `mapstructure:"mutex-profile-rate" toml:"mutex-profile-rate" validate:"gte=0"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Digest: DigestConfig{
			Bits:  DefaultBits,
			Strip: true,
		},
		Bench: BenchConfig{
			Size:       DefaultBenchSize,
			Iterations: DefaultBenchIterations,
			Samples:    DefaultBenchSamples,
		},
	}
}

// Validate checks the configuration fields and returns an error
// wrapping ErrInvalidConfig and the underlying cause.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := astryx.ValidateWidth(c.Digest.Bits); err != nil {
		return fmt.Errorf("%w: digest: %w", ErrInvalidConfig, err)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}

	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}
