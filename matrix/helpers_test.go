// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for the matrix tests.
//   - Offer an independent reference product to cross-check Mul/MulVec.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlinalg/complexnum"
	"github.com/katalvlaran/qlinalg/matrix"
)

// c is shorthand for complexnum.New in fixtures.
func c(re, im float64) complexnum.Number { return complexnum.New(re, im) }

// r is shorthand for a real-valued complexnum.Number.
func r(re float64) complexnum.Number { return complexnum.New(re, 0) }

// MustMatrix builds a rows×cols matrix from row-major elements or fails the test.
func MustMatrix(t *testing.T, rows, cols int, elems ...complexnum.Number) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(elems, rows, cols)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m *matrix.Matrix, i, j int) complexnum.Number {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// randomMatrix returns a rows×cols matrix with components in [-10, 10).
func randomMatrix(t *testing.T, rng *rand.Rand, rows, cols int) *matrix.Matrix {
	t.Helper()
	elems := make([]complexnum.Number, rows*cols)
	for i := range elems {
		elems[i] = c(rng.Float64()*20-10, rng.Float64()*20-10)
	}

	return MustMatrix(t, rows, cols, elems...)
}

// rowDot computes row i of m dotted with x through the public accessors only.
func rowDot(t *testing.T, m *matrix.Matrix, i int, x []complexnum.Number) complexnum.Number {
	t.Helper()
	sum := complexnum.Zero()
	for h := range x {
		sum = sum.Add(MustAt(t, m, i, h).Mul(x[h]))
	}

	return sum
}
