// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations
// return these sentinels, wrapped with an operation tag via matrixErrorf,
// and tests check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when a shape contract is violated:
	// len(elements) != rows*cols or a negative dimension at construction,
	// Add/Sub of different shapes, Mul where a.Cols != b.Rows, or ToVector
	// on a matrix with more than one column.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation name constants for unified error wrapping.
const (
	opNew        = "New"
	opZeros      = "Zeros"
	opIdentity   = "Identity"
	opAdd        = "Add"
	opSub        = "Sub"
	opScale      = "Scale"
	opNegate     = "Negate"
	opMul        = "Mul"
	opFromVector = "FromVector"
	opToVector   = "ToVector"
	opMulVec     = "MulVec"
	opToCDense   = "ToCDense"
	opFromCDense = "FromCDense"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps err with the method tag and the offending coordinates.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
