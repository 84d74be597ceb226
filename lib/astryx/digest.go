// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package astryx

import (
	"encoding/hex"
	"fmt"
)

// Digest256 is a 256 bit Astryx digest.
type Digest256 [Size256]byte

// Bytes returns a copy of the digest as a byte slice.
func (d Digest256) Bytes() []byte {
	b := d
	return b[:]
}

// String returns the lowercase hexadecimal encoding of the digest.
func (d Digest256) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first 4 bytes and the last 4 bytes of the hex string.
func (d Digest256) Short() string {
	return short(d[:])
}

// Digest512 is a 512 bit Astryx digest.
type Digest512 [Size512]byte

// Bytes returns a copy of the digest as a byte slice.
func (d Digest512) Bytes() []byte {
	b := d
	return b[:]
}

// String returns the lowercase hexadecimal encoding of the digest.
func (d Digest512) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first 4 bytes and the last 4 bytes of the hex string.
func (d Digest512) Short() string {
	return short(d[:])
}

func short(b []byte) string {
	const nBytes = 4
	return fmt.Sprintf("%x...%x", b[:nBytes], b[len(b)-nBytes:])
}
