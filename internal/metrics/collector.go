// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "astryx"

// Collector holds the prometheus collectors of hash runs, registered
// on its own registry.
type Collector struct {
	registry     *prometheus.Registry
	hashes       *prometheus.CounterVec
	hashedBytes  *prometheus.CounterVec
	hashDuration *prometheus.HistogramVec
}

// NewCollector creates a collector and registers its metrics.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		hashes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hashes_total",
			Help:      "Number of digests computed, by algorithm.",
		}, []string{"algorithm"}),
		hashedBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hashed_bytes_total",
			Help:      "Number of input bytes digested, by algorithm.",
		}, []string{"algorithm"}),
		hashDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "hash_duration_seconds",
			Help:      "Mean time to compute one digest over a timing sample, by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 14),
		}, []string{"algorithm"}),
	}

	c.registry.MustRegister(c.hashes, c.hashedBytes, c.hashDuration)
	return c
}

// Gatherer returns the registry of the collector.
func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// ObserveHashes records a timing sample of n digests of size bytes each.
func (c *Collector) ObserveHashes(algorithm string, n, size int, elapsed time.Duration) {
	if n <= 0 {
		return
	}
	c.hashes.WithLabelValues(algorithm).Add(float64(n))
	c.hashedBytes.WithLabelValues(algorithm).Add(float64(n * size))
	c.hashDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds() / float64(n))
}
