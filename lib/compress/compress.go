// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package compress

import (
	"math/bits"

	"github.com/astryx-hash/astryx/lib/walk"
)

const (
	// StateSize is the size in bytes of the compression state.
	StateSize = 64
	// Rounds is the number of mixing rounds applied after absorption.
	Rounds = 12

	chunkSize = 32
	chunks    = walk.Nodes / chunkSize
)

// State is the 512 bit compression state.
type State [StateSize]byte

// Compress absorbs the lattice into an empty state and mixes it.
func Compress(lattice *walk.Lattice) (state State) {
	state.Absorb(lattice)
	state.Mix()
	return state
}

// Absorb folds the lattice into the state, 32 byte chunk by chunk.
// Each byte writes three state positions in order, the last write
// reading the value produced by the second one.
func (s *State) Absorb(lattice *walk.Lattice) {
	for chunkIdx := 0; chunkIdx < chunks; chunkIdx++ {
		chunk := lattice[chunkIdx*chunkSize : (chunkIdx+1)*chunkSize]
		for j, b := range chunk {
			v := bits.RotateLeft8(b, (chunkIdx+j)%8)

			idx := (j + chunkIdx*7) % StateSize
			s[idx] ^= v

			idx2 := (idx + 13) % StateSize
			s[idx2] += bits.RotateLeft8(v, 1)

			s[(idx+37)%StateSize] ^= bits.RotateLeft8(s[idx2], 3)
		}
	}
}

// Mix applies the mixing rounds to the state.
func (s *State) Mix() {
	for round := 0; round < Rounds; round++ {
		*s = mixRound(s, round)
	}
}

// mixRound computes the next state from a frozen snapshot of s.
func mixRound(s *State, round int) (next State) {
	for i := range next {
		a := s[i]
		b := s[(i+1)%StateSize]
		c := s[(i+23)%StateSize]
		d := s[(i+41)%StateSize]

		m1 := a + bits.RotateLeft8(b, round%8)
		m2 := c ^ bits.RotateLeft8(d, (i+round)%8)
		next[i] = m1 ^ m2
	}
	return next
}
