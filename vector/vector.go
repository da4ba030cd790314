// SPDX-License-Identifier: MIT

// Package vector - storage & safe accessors.
//
// Purpose:
//   - Hold a fixed-length run of complexnum.Number values.
//   - Guarantee immutability at the public surface: no method writes to data
//     after construction, and no accessor leaks the backing slice.

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qlinalg/complexnum"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
	_fmtNil   = "<nil>"
)

// Vector is an immutable, fixed-length complex vector.
type Vector struct {
	data []complexnum.Number // owned copy, len fixed at construction
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// New returns a vector holding a copy of elems.
// New() is the empty vector of length 0.
// Complexity: O(n).
func New(elems ...complexnum.Number) *Vector {
	data := make([]complexnum.Number, len(elems))
	copy(data, elems)

	return &Vector{data: data}
}

// Zeros returns the zero vector of length n.
//
// Errors:
//   - ErrInvalidLength when n < 0.
func Zeros(n int) (*Vector, error) {
	if n < 0 {
		return nil, vectorErrorf(opZeros, ErrInvalidLength)
	}

	return &Vector{data: make([]complexnum.Number, n)}, nil
}

// fromOwned wraps data without copying. Callers must not retain data.
func fromOwned(data []complexnum.Number) *Vector {
	return &Vector{data: data}
}

// Len returns the number of elements; a nil vector has length 0.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// At returns the element at index i.
//
// Errors:
//   - ErrNilVector for a nil receiver.
//   - ErrOutOfRange when i < 0 or i >= Len().
func (v *Vector) At(i int) (complexnum.Number, error) {
	if v == nil {
		return complexnum.Number{}, vectorErrorf(opAt, ErrNilVector)
	}
	if i < 0 || i >= len(v.data) {
		return complexnum.Number{}, fmt.Errorf("%s(%d): %w", opAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Elements returns a copy of the elements in order.
func (v *Vector) Elements() []complexnum.Number {
	if v == nil {
		return nil
	}
	out := make([]complexnum.Number, len(v.data))
	copy(out, v.data)

	return out
}

// Equal reports whether a and b have the same length and exactly equal
// elements. Two nil vectors are equal.
func Equal(a, b *Vector) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// ApproxEqual is Equal with an absolute per-component tolerance.
func ApproxEqual(a, b *Vector, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if !complexnum.ApproxEqual(a.data[i], b.data[i], tol) {
			return false
		}
	}

	return true
}

// String renders v as "[e0, e1, …]" using complexnum.Number.String for
// each element; the empty vector renders as "[]".
func (v *Vector) String() string {
	if v == nil {
		return _fmtNil
	}
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(x.String())
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
