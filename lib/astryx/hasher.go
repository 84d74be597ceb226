// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package astryx

import (
	"errors"
	"fmt"

	"github.com/astryx-hash/astryx/lib/compress"
	"github.com/astryx-hash/astryx/lib/walk"
)

const (
	// Bits256 selects the 256 bit output width.
	Bits256 = 256
	// Bits512 selects the 512 bit output width.
	Bits512 = 512

	// Size256 is the byte length of a 256 bit digest.
	Size256 = Bits256 / 8
	// Size512 is the byte length of a 512 bit digest.
	Size512 = Bits512 / 8
)

// ErrUnsupportedWidth is the panic value wrapped by Hash, and the error
// returned by ValidateWidth, for an output width other than 256 or 512.
var ErrUnsupportedWidth = errors.New("output bits must be 256 or 512")

// ValidateWidth returns an error wrapping ErrUnsupportedWidth if bits is
// not a supported output width.
func ValidateWidth(bits int) error {
	switch bits {
	case Bits256, Bits512:
		return nil
	default:
		return fmt.Errorf("%w: got %d", ErrUnsupportedWidth, bits)
	}
}

// Hash returns the bits/8 byte Astryx digest of input.
// It panics if bits is not 256 or 512; callers taking the width from
// user input should check it with ValidateWidth first.
func Hash(input []byte, bits int) []byte {
	if err := ValidateWidth(bits); err != nil {
		panic(err)
	}

	state := sum(input)

	digest := make([]byte, bits/8)
	copy(digest, state[:])
	return digest
}

// Sum256 returns the 256 bit Astryx digest of input.
func Sum256(input []byte) (digest Digest256) {
	copy(digest[:], Hash(input, Bits256))
	return digest
}

// Sum512 returns the 512 bit Astryx digest of input.
func Sum512(input []byte) (digest Digest512) {
	copy(digest[:], Hash(input, Bits512))
	return digest
}

func sum(input []byte) compress.State {
	amplitudes := walk.Evolve(input)
	lattice := walk.Quantize(&amplitudes)
	return compress.Compress(&lattice)
}
