// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & safe accessors.
//
// Purpose:
//   - Hold rows×cols complex values in one flat buffer with the explicit
//     index formula row*cols + col.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//
// Complexity quicksheet:
//   - New/Clone: O(r*c); At/Set/Dims: O(1).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qlinalg/complexnum"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen   = "["
	_fmtClose  = "]"
	_fmtSep    = ", "
	_fmtRowSep = ","
	_fmtNil    = "<nil>"
	_methodAt  = "At"
	_methodSet = "Set"
)

// Matrix is a dense complex matrix in row-major order.
//   - r, c hold the shape (rows, cols); zero is allowed for either.
//   - data has length r*c; element (i, j) lives at data[i*c+j].
//
// Operations never mutate their operands. Set is the only mutator and
// touches the receiver alone.
type Matrix struct {
	r, c int                 // row and column counts
	data []complexnum.Number // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New builds a rows×cols matrix from elements listed in row-major order.
// The slice is copied.
//
// Errors:
//   - ErrShapeMismatch when len(elements) != rows*cols, a dimension is
//     negative, or rows*cols overflows int.
//
// Complexity: O(rows*cols).
func New(elements []complexnum.Number, rows, cols int) (*Matrix, error) {
	if err := validateShape(rows, cols, len(elements)); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	data := make([]complexnum.Number, len(elements))
	copy(data, elements)

	return &Matrix{r: rows, c: cols, data: data}, nil
}

// Zeros returns the rows×cols zero matrix.
//
// Errors:
//   - ErrShapeMismatch on a negative dimension or when rows*cols overflows int.
func Zeros(rows, cols int) (*Matrix, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return newZeros(rows, cols), nil
}

// Identity returns the n×n identity: One() on the diagonal, Zero() elsewhere.
//
// Errors:
//   - ErrShapeMismatch when n < 0 or n*n overflows int.
func Identity(n int) (*Matrix, error) {
	if err := validateDims(n, n); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	m := newZeros(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = complexnum.One()
	}

	return m, nil
}

// newZeros allocates a zero matrix; callers have validated the shape.
func newZeros(rows, cols int) *Matrix {
	return &Matrix{r: rows, c: cols, data: make([]complexnum.Number, rows*cols)}
}

// Rows returns the number of rows; 0 for a nil matrix.
func (m *Matrix) Rows() int {
	r, _ := m.Dims()
	return r
}

// Cols returns the number of columns; 0 for a nil matrix.
func (m *Matrix) Cols() int {
	_, c := m.Dims()
	return c
}

// Dims returns the shape (rows, cols).
func (m *Matrix) Dims() (rows, cols int) {
	if m == nil {
		return 0, 0
	}

	return m.r, m.c
}

// indexOf computes the flat offset for (row, col).
//
// Inputs: accessor name for the error tag, row and column indices.
// Returns: row*c + col, or ErrNilMatrix / ErrOutOfRange wrapped with the
// method and coordinates.
// Complexity: O(1).
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, indexErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, indexErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
//
// Errors:
//   - ErrOutOfRange when row ∉ [0, Rows()) or col ∉ [0, Cols()).
//   - ErrNilMatrix for a nil receiver.
func (m *Matrix) At(row, col int) (complexnum.Number, error) {
	idx, err := m.indexOf(_methodAt, row, col)
	if err != nil {
		return complexnum.Number{}, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange, ErrNilMatrix (as for At).
func (m *Matrix) Set(row, col int, v complexnum.Number) error {
	idx, err := m.indexOf(_methodSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	data := make([]complexnum.Number, len(m.data))
	copy(data, m.data)

	return &Matrix{r: m.r, c: m.c, data: data}
}

// Equal reports whether a and b have the same shape and exactly equal
// elements. Two nil matrices are equal.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
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
func ApproxEqual(a, b *Matrix, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if !complexnum.ApproxEqual(a.data[i], b.data[i], tol) {
			return false
		}
	}

	return true
}

// String renders m as "[[r0c0, r0c1],[r1c0, r1c1]]": elements of a row are
// separated by ", ", rows by ",". A matrix without rows renders as "[]".
func (m *Matrix) String() string {
	if m == nil {
		return _fmtNil
	}
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteString(_fmtRowSep)
		}
		sb.WriteString(_fmtOpen)
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[base+j].String())
		}
		sb.WriteString(_fmtClose)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
