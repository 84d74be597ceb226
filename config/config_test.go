// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/astryx-hash/astryx/internal/log"
	"github.com/astryx-hash/astryx/lib/astryx"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Default(t *testing.T) {
	t.Parallel()

	expected := &Config{
		Log:    LogConfig{Level: "info"},
		Digest: DigestConfig{Bits: 256, Strip: true},
		Bench:  BenchConfig{Size: 1024, Iterations: 2000, Samples: 5},
	}

	config := Default()

	assert.Equal(t, expected, config)
	assert.NoError(t, config.Validate())
}

func Test_Config_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		modify     func(c *Config)
		errWrapped error
		failedTag  string
	}{
		"512 bits": {
			modify: func(c *Config) { c.Digest.Bits = 512 },
		},
		"metrics address": {
			modify: func(c *Config) { c.Metrics.Address = "localhost:9876" },
		},
		"short log level": {
			modify: func(c *Config) { c.Log.Level = "dbug" },
		},
		"unsupported bits": {
			modify:     func(c *Config) { c.Digest.Bits = 128 },
			errWrapped: astryx.ErrUnsupportedWidth,
		},
		"unknown log level": {
			modify:     func(c *Config) { c.Log.Level = "verbose" },
			errWrapped: log.ErrLevelNotRecognised,
		},
		"empty log level": {
			modify:    func(c *Config) { c.Log.Level = "" },
			failedTag: "required",
		},
		"zero iterations": {
			modify:    func(c *Config) { c.Bench.Iterations = 0 },
			failedTag: "gt",
		},
		"negative samples": {
			modify:    func(c *Config) { c.Bench.Samples = -1 },
			failedTag: "gt",
		},
		"negative size": {
			modify:    func(c *Config) { c.Bench.Size = -1 },
			failedTag: "gte",
		},
		"metrics address without port": {
			modify:    func(c *Config) { c.Metrics.Address = "localhost" },
			failedTag: "hostname_port",
		},
		"pprof enabled": {
			modify: func(c *Config) {
				c.Pprof = PprofConfig{Address: "localhost:6060", BlockProfileRate: 1, MutexProfileRate: 5}
			},
		},
		"negative mutex profile rate": {
			modify:    func(c *Config) { c.Pprof.MutexProfileRate = -1 },
			failedTag: "gte",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			config := Default()
			testCase.modify(config)

			err := config.Validate()

			if testCase.errWrapped == nil && testCase.failedTag == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, ErrInvalidConfig)
			if testCase.errWrapped != nil {
				assert.ErrorIs(t, err, testCase.errWrapped)
			}
			if testCase.failedTag != "" {
				var validationErrors validator.ValidationErrors
				require.True(t, errors.As(err, &validationErrors))
				require.Len(t, validationErrors, 1)
				assert.Equal(t, testCase.failedTag, validationErrors[0].Tag())
			}
		})
	}
}

func Test_Config_LogLevel(t *testing.T) {
	t.Parallel()

	config := Default()
	config.Log.Level = "warn"

	level, err := config.LogLevel()

	require.NoError(t, err)
	assert.Equal(t, log.Warn, level)
}

func Test_Config_ExportTOML(t *testing.T) {
	t.Parallel()

	config := Default()
	config.Digest.Bits = 512
	config.Metrics.Address = "127.0.0.1:9876"
	config.Pprof.BlockProfileRate = 1

	buffer := bytes.NewBuffer(nil)
	err := config.ExportTOML(buffer)
	require.NoError(t, err)

	exported := buffer.String()
	for _, table := range []string{"[log]", "[digest]", "[bench]", "[metrics]", "[pprof]"} {
		assert.Contains(t, exported, table)
	}

	decoded := new(Config)
	err = toml.Unmarshal(buffer.Bytes(), decoded)
	require.NoError(t, err)
	assert.Equal(t, config, decoded)
}
