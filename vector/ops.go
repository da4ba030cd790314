// SPDX-License-Identifier: MIT

// Package vector - vector-space operations.
//
// Purpose:
//   - Element-wise kernels delegate all scalar work to complexnum.
//   - Inputs are never mutated; each call allocates exactly one result.
//
// Determinism:
//   - Fixed loop order 0..n-1; the inner product accumulates left to right.

package vector

import (
	"math"

	"github.com/katalvlaran/qlinalg/complexnum"
)

// Add returns the element-wise sum a + b.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch (lengths differ).
//
// Complexity: O(n).
func Add(a, b *Vector) (*Vector, error) {
	if err := validateSameLen(a, b); err != nil {
		return nil, vectorErrorf(opAdd, err)
	}
	out := make([]complexnum.Number, len(a.data))
	for i := range a.data {
		out[i] = a.data[i].Add(b.data[i])
	}

	return fromOwned(out), nil
}

// Sub returns a − b, defined as a + (−b).
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
func Sub(a, b *Vector) (*Vector, error) {
	if err := validateSameLen(a, b); err != nil {
		return nil, vectorErrorf(opSub, err)
	}
	nb, _ := Negate(b) // b is known non-nil here

	return Add(a, nb)
}

// Scale returns v with every element multiplied by c.
//
// Errors:
//   - ErrNilVector.
func Scale(v *Vector, c complexnum.Number) (*Vector, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf(opScale, err)
	}
	out := make([]complexnum.Number, len(v.data))
	for i, x := range v.data {
		out[i] = x.Mul(c)
	}

	return fromOwned(out), nil
}

// Negate returns the additive inverse −v.
//
// Errors:
//   - ErrNilVector.
func Negate(v *Vector) (*Vector, error) {
	if err := validateNotNil(v); err != nil {
		return nil, vectorErrorf(opNegate, err)
	}
	out := make([]complexnum.Number, len(v.data))
	for i, x := range v.data {
		out[i] = x.Neg()
	}

	return fromOwned(out), nil
}

// InnerProduct returns <a, b> = Σ conj(a[i]) · b[i].
// It is conjugate-linear in a, linear in b, and
// InnerProduct(a, b) == Conj(InnerProduct(b, a)).
// The inner product of two empty vectors is (0, 0).
//
// Inputs: two non-nil vectors of equal length.
// Returns: the sum, folded from Zero() in ascending index order.
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
//
// Complexity: Time O(n), Space O(1).
func InnerProduct(a, b *Vector) (complexnum.Number, error) {
	if err := validateSameLen(a, b); err != nil {
		return complexnum.Number{}, vectorErrorf(opInnerProduct, err)
	}
	acc := complexnum.Zero()
	for i := range a.data {
		acc = acc.Add(a.data[i].Conj().Mul(b.data[i]))
	}

	return acc, nil
}

// Norm returns sqrt(Re <v, v>). The imaginary part of <v, v> is always
// zero and is ignored.
//
// Errors:
//   - ErrNilVector.
func Norm(v *Vector) (float64, error) {
	if err := validateNotNil(v); err != nil {
		return 0, vectorErrorf(opNorm, err)
	}
	ip, _ := InnerProduct(v, v) // same operand on both sides

	return math.Sqrt(ip.Real()), nil
}

// Distance returns Norm(a − b). It is exactly symmetric in a and b.
//
// Errors:
//   - ErrNilVector, ErrDimensionMismatch.
func Distance(a, b *Vector) (float64, error) {
	d, err := Sub(a, b)
	if err != nil {
		return 0, vectorErrorf(opDistance, err)
	}

	return Norm(d)
}
