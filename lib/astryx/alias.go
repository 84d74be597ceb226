// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package astryx

// GAQWH is the former name of Hash.
//
// Deprecated: use Hash.
func GAQWH(input []byte, bits int) []byte {
	return Hash(input, bits)
}

// GAQWH256 is the former name of Sum256.
//
// Deprecated: use Sum256.
func GAQWH256(input []byte) Digest256 {
	return Sum256(input)
}

// GAQWH512 is the former name of Sum512.
//
// Deprecated: use Sum512.
func GAQWH512(input []byte) Digest512 {
	return Sum512(input)
}
