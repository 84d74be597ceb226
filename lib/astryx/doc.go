// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

// Package astryx computes the Astryx digest, an experimental hash
// inspired by discrete-time quantum walk simulation.
//
// The message drives a walker's amplitude vector around a ring of 256
// nodes, one step per byte. The final probability distribution is
// quantized to 256 bytes, absorbed into a 64 byte state and mixed over
// 12 rounds. The digest is the first 32 or 64 bytes of that state.
//
// Each byte contributes only its two low bits to the walk, so messages
// of equal length that agree on those bits collide: "Astryx" and
// "astryx" share a digest.
//
// The construction is unaudited. It must not be relied on where
// collision, preimage or side-channel resistance matters.
package astryx
