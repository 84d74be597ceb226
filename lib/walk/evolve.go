// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package walk

import (
	"math"

	"github.com/astryx-hash/astryx/internal/log"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "walk"))

// evenCoin is the balanced coin used on even steps.
const evenCoin = math.Sqrt2 / 2

// oddCoins holds cos(h·π/4) and sin(h·π/4) for the hop distances 0 to 3.
// The values are the correctly rounded results, written out so the
// digest does not depend on the accuracy of math.Cos and math.Sin.
var oddCoins = [4][2]float64{
	{1, 0},
	{0x1.6a09e667f3bcdp-1, 0x1.6a09e667f3bccp-1},
	{0x1.1a62633145c07p-54, 1},
	{-0x1.6a09e667f3bccp-1, 0x1.6a09e667f3bcdp-1},
}

const (
	memoryWeight  = 0.3
	currentWeight = 0.7
)

// Evolve walks the ring once per message byte, starting from the ground
// state, and returns the final amplitude vector. An empty message
// returns the ground state.
func Evolve(message []byte) StateVector {
	state := GroundState()
	// priorEven is the pre-blend vector of the last even step.
	priorEven := GroundState()

	for step, b := range message {
		hop := int(b & 0x03)
		c, s := coin(step, hop)

		next := advance(&state, hop, c, s)

		if step%2 == 0 {
			current := next
			next = blend(&current, &priorEven)
			priorEven = current
		}

		if !next.normalize() {
			logger.Tracef("amplitude vector vanished at step %d, reset to ground state", step)
		}

		state = next
	}

	return state
}

func coin(step, hop int) (c, s float64) {
	if step%2 == 0 {
		return evenCoin, evenCoin
	}
	return oddCoins[hop][0], oddCoins[hop][1]
}

// advance applies one coin and shift step to every node of the ring,
// reading only from state.
func advance(state *StateVector, hop int, c, s float64) (next StateVector) {
	for i := range next {
		left := state[wrap(i-1)]
		right := state[wrap(i+1)]
		hopPlus := state[wrap(i+hop)]
		hopMinus := state[wrap(i-hop)]

		up := left.scale(c).add(right.scale(s))
		down := left.scale(s).sub(right.scale(c))
		lively := hopPlus.sub(hopMinus).scale(0.25)

		next[i] = up.add(down).scale(0.5).add(lively)
	}
	return next
}

func blend(current, prior *StateVector) (blended StateVector) {
	for i := range blended {
		blended[i] = current[i].scale(currentWeight).add(prior[i].scale(memoryWeight))
	}
	return blended
}
