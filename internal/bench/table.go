// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package bench

import (
	"fmt"
	"io"
	"strings"
)

// WriteTable writes the results as a fixed width table.
func WriteTable(w io.Writer, settings Settings, results []Result) (err error) {
	var b strings.Builder
	fmt.Fprintf(&b, "message_size=%d bytes | iterations=%d | samples=%d\n",
		settings.Size, settings.Iterations, settings.Samples)
	b.WriteString("name           median(s)   hashes/s      MB/s\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	for _, result := range results {
		fmt.Fprintf(&b, "%-14s %-10.4f %-12.0f %.2f\n",
			result.Name, result.Median.Seconds(), result.HashesPerSecond, result.MBPerSecond)
	}

	_, err = io.WriteString(w, b.String())
	return err
}
