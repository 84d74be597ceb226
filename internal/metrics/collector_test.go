// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Collector_ObserveHashes(t *testing.T) {
	t.Parallel()

	collector := NewCollector()

	collector.ObserveHashes("astryx", 10, 32, 10*time.Millisecond)
	collector.ObserveHashes("astryx", 5, 32, 5*time.Millisecond)
	collector.ObserveHashes("sha3_256", 2, 1024, time.Millisecond)

	assert.Equal(t, 15.0, testutil.ToFloat64(collector.hashes.WithLabelValues("astryx")))
	assert.Equal(t, 480.0, testutil.ToFloat64(collector.hashedBytes.WithLabelValues("astryx")))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.hashes.WithLabelValues("sha3_256")))
	assert.Equal(t, 2048.0, testutil.ToFloat64(collector.hashedBytes.WithLabelValues("sha3_256")))

	const expected = `
# HELP astryx_hashes_total Number of digests computed, by algorithm.
# TYPE astryx_hashes_total counter
astryx_hashes_total{algorithm="astryx"} 15
astryx_hashes_total{algorithm="sha3_256"} 2
`
	err := testutil.GatherAndCompare(collector.Gatherer(),
		strings.NewReader(expected), "astryx_hashes_total")
	require.NoError(t, err)
}

func Test_Collector_ObserveHashes_NoHashes(t *testing.T) {
	t.Parallel()

	collector := NewCollector()

	collector.ObserveHashes("astryx", 0, 32, time.Second)

	count, err := testutil.GatherAndCount(collector.Gatherer())
	require.NoError(t, err)
	assert.Zero(t, count)
}
