// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package walk

import "math"

// Nodes is the number of nodes of the ring the walker moves on.
const Nodes = 256

// epsilon is the float64 machine epsilon. A total probability at or
// below it is treated as a vanished amplitude vector.
const epsilon = 0x1p-52

// Amplitude is the complex probability amplitude at one ring node.
//
// Arithmetic on amplitudes rounds every product explicitly with a
// float64 conversion, which stops the compiler from fusing multiply
// and add instructions on architectures that have them. Digests
// therefore do not depend on GOARCH.
type Amplitude struct {
	Re float64
	Im float64
}

// NormSqr returns the squared magnitude of the amplitude,
// which is its probability weight.
func (a Amplitude) NormSqr() float64 {
	return float64(a.Re*a.Re) + float64(a.Im*a.Im)
}

func (a Amplitude) add(b Amplitude) Amplitude {
	return Amplitude{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

func (a Amplitude) sub(b Amplitude) Amplitude {
	return Amplitude{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

func (a Amplitude) scale(k float64) Amplitude {
	return Amplitude{Re: float64(a.Re * k), Im: float64(a.Im * k)}
}

// StateVector is the walker's amplitude at every node of the ring.
type StateVector [Nodes]Amplitude

// GroundState returns the state with all the probability mass on node 0.
func GroundState() (v StateVector) {
	v[0] = Amplitude{Re: 1}
	return v
}

// TotalProbability returns the sum of the squared magnitudes
// of all the amplitudes, accumulated in node order.
func (v *StateVector) TotalProbability() (total float64) {
	for _, amplitude := range v {
		total += amplitude.NormSqr()
	}
	return total
}

// normalize scales v to a total probability of 1. If the total is
// not positive, not finite or below epsilon, v is reset to the ground
// state and false is returned.
func (v *StateVector) normalize() (ok bool) {
	total := v.TotalProbability()
	if total <= epsilon || math.IsNaN(total) || math.IsInf(total, 0) {
		*v = GroundState()
		return false
	}

	inverse := 1 / math.Sqrt(total)
	for i := range v {
		v[i] = v[i].scale(inverse)
	}
	return true
}

// wrap maps any node index, including negative ones, onto the ring.
func wrap(i int) int {
	return i & (Nodes - 1)
}
