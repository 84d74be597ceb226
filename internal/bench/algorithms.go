// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package bench

import (
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"github.com/astryx-hash/astryx/lib/astryx"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm is a named digest function to benchmark.
type Algorithm struct {
	Name string
	Sum  func(message []byte) []byte
}

// Algorithms returns Astryx followed by the reference hashes it is
// compared against.
func Algorithms() []Algorithm {
	return []Algorithm{
		{Name: "astryx_gaqwh", Sum: astryxSum},
		{Name: "sha3_256", Sum: sha3Sum},
		{Name: "blake2b_256", Sum: blake2bSum},
		{Name: "blake3", Sum: blake3Sum},
		{Name: "xxhash64", Sum: xxhashSum},
	}
}

func astryxSum(message []byte) []byte {
	return astryx.Hash(message, astryx.Bits256)
}

func sha3Sum(message []byte) []byte {
	digest := sha3.Sum256(message)
	return digest[:]
}

func blake2bSum(message []byte) []byte {
	digest := blake2b.Sum256(message)
	return digest[:]
}

func blake3Sum(message []byte) []byte {
	digest := blake3.Sum256(message)
	return digest[:]
}

func xxhashSum(message []byte) []byte {
	hasher := xxhash.NewS64(0)
	_, _ = hasher.Write(message)

	digest := make([]byte, 8)
	binary.LittleEndian.PutUint64(digest, hasher.Sum64())
	return digest
}
