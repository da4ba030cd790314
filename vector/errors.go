// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (possibly wrapped with an operation
// tag) and tests check them via errors.Is. No operation panics on
// user-triggered conditions.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths, e.g. Add
	// of a 2-vector and a 3-vector.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates an element index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidLength indicates a negative requested length.
	ErrInvalidLength = errors.New("vector: length must be >= 0")

	// ErrNilVector indicates that a nil *Vector (receiver or argument) was used.
	ErrNilVector = errors.New("vector: nil vector")
)

// Operation name constants for error wrapping.
const (
	opAt           = "At"
	opZeros        = "Zeros"
	opAdd          = "Add"
	opSub          = "Sub"
	opScale        = "Scale"
	opNegate       = "Negate"
	opInnerProduct = "InnerProduct"
	opNorm         = "Norm"
	opDistance     = "Distance"
)

// vectorErrorf wraps err with the given operation tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
