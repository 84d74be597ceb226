// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package walk

import "math"

// Lattice is the byte quantization of a state vector, one byte per node.
type Lattice [Nodes]byte

// Quantize maps the probability of each node to floor(p × 256),
// clamped to [0, 255]. A NaN probability maps to 0.
func Quantize(state *StateVector) (lattice Lattice) {
	for i, amplitude := range state {
		q := math.Floor(amplitude.NormSqr() * 256)
		switch {
		case math.IsNaN(q), q <= 0:
			lattice[i] = 0
		case q >= math.MaxUint8:
			lattice[i] = math.MaxUint8
		default:
			lattice[i] = byte(q)
		}
	}
	return lattice
}
