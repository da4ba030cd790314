// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the vector tests.

package vector_test

import (
	"math/rand"

	"github.com/katalvlaran/qlinalg/complexnum"
	"github.com/katalvlaran/qlinalg/vector"
)

// c is shorthand for complexnum.New in fixtures.
func c(re, im float64) complexnum.Number { return complexnum.New(re, im) }

// randomVector returns a length-n vector with components in [-10, 10).
// The generator is owned by the caller so tests stay deterministic.
func randomVector(rng *rand.Rand, n int) *vector.Vector {
	elems := make([]complexnum.Number, n)
	for i := range elems {
		elems[i] = c(rng.Float64()*20-10, rng.Float64()*20-10)
	}

	return vector.New(elems...)
}
