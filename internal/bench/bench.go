// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package bench

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrInvalidSettings is returned by Run for non positive iterations
// or samples, or a negative message size.
var ErrInvalidSettings = errors.New("invalid benchmark settings")

// Settings configures a benchmark run.
type Settings struct {
	// Size is the message size in bytes.
	Size int
	// Iterations is the number of digests per timing sample.
	Iterations int
	// Samples is the number of timing samples per algorithm.
	Samples int
}

// Validate returns an error wrapping ErrInvalidSettings if
// the settings cannot produce a timing.
func (s Settings) Validate() error {
	switch {
	case s.Size < 0:
		return fmt.Errorf("%w: size %d is negative", ErrInvalidSettings, s.Size)
	case s.Iterations <= 0:
		return fmt.Errorf("%w: iterations %d must be positive", ErrInvalidSettings, s.Iterations)
	case s.Samples <= 0:
		return fmt.Errorf("%w: samples %d must be positive", ErrInvalidSettings, s.Samples)
	}
	return nil
}

// Recorder records timing samples.
type Recorder interface {
	ObserveHashes(algorithm string, n, size int, elapsed time.Duration)
}

// Result is the outcome of benchmarking one algorithm.
type Result struct {
	Name            string
	Median          time.Duration
	HashesPerSecond float64
	MBPerSecond     float64
}

// Run times every algorithm on the message, one algorithm after the other.
// Each timing sample is handed to the recorder as soon as it completes.
// It returns the results gathered so far and the context error if the
// context is canceled between two samples.
func Run(ctx context.Context, message []byte, settings Settings,
	algorithms []Algorithm, recorder Recorder) (results []Result, err error) {
	settings.Size = len(message)
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	results = make([]Result, 0, len(algorithms))
	for _, algorithm := range algorithms {
		samples := make([]time.Duration, settings.Samples)
		for i := range samples {
			if err := ctx.Err(); err != nil {
				return results, fmt.Errorf("benchmarking %s: %w", algorithm.Name, err)
			}
			samples[i] = timeSample(algorithm, message, settings.Iterations)
			recorder.ObserveHashes(algorithm.Name, settings.Iterations, len(message), samples[i])
		}

		results = append(results, newResult(algorithm.Name, samples, settings))
	}

	return results, nil
}

func timeSample(algorithm Algorithm, message []byte, iterations int) time.Duration {
	start := time.Now()
	for i := 0; i < iterations; i++ {
		_ = algorithm.Sum(message)
	}
	return time.Since(start)
}

func newResult(name string, samples []time.Duration, settings Settings) Result {
	median := medianDuration(samples)
	seconds := median.Seconds()
	totalBytes := float64(settings.Size) * float64(settings.Iterations)
	return Result{
		Name:            name,
		Median:          median,
		HashesPerSecond: float64(settings.Iterations) / seconds,
		MBPerSecond:     totalBytes / (1024 * 1024) / seconds,
	}
}

// medianDuration returns the median of samples, averaging the two
// middle samples for an even count. samples is not modified.
func medianDuration(samples []time.Duration) time.Duration {
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	middle := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[middle]
	}
	return (sorted[middle-1] + sorted[middle]) / 2
}
