// SPDX-License-Identifier: MIT

// Package matrix - conversions to and from vectors and gonum matrices.
//
// A column matrix (cols == 1) is the bridge between package vector and this
// package. MulVec never has a dedicated dot-product loop: it lifts the vector
// into a column, runs Mul, and lowers the column back.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qlinalg/complexnum"
	"github.com/katalvlaran/qlinalg/vector"
)

// FromVector returns the N×1 column matrix holding the elements of v.
//
// Errors:
//   - vector.ErrNilVector for a nil v.
func FromVector(v *vector.Vector) (*Matrix, error) {
	if v == nil {
		return nil, matrixErrorf(opFromVector, vector.ErrNilVector)
	}
	elems := v.Elements() // already a private copy

	return &Matrix{r: len(elems), c: 1, data: elems}, nil
}

// ToVector returns the elements of a column matrix as a vector of length
// m.Rows().
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch when m.Cols() != 1.
func ToVector(m *Matrix) (*vector.Vector, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opToVector, err)
	}
	if m.c != 1 {
		return nil, matrixErrorf(opToVector, ErrShapeMismatch)
	}

	return vector.New(m.data...), nil
}

// MulVec returns m · v, computed as ToVector(Mul(m, FromVector(v))).
//
// Errors:
//   - ErrNilMatrix, vector.ErrNilVector.
//   - ErrShapeMismatch when m.Cols() != v.Len().
func MulVec(m *Matrix, v *vector.Vector) (*vector.Vector, error) {
	col, err := FromVector(v)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	prod, err := Mul(m, col)
	if err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	return ToVector(prod)
}

// ToCDense copies m into a gonum complex dense matrix.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrShapeMismatch when m has zero rows or columns; gonum does not
//     represent empty matrices.
func ToCDense(m *Matrix) (*mat.CDense, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opToCDense, err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToCDense, ErrShapeMismatch)
	}
	data := make([]complex128, len(m.data))
	for idx, x := range m.data {
		data[idx] = x.Complex128()
	}

	return mat.NewCDense(m.r, m.c, data), nil
}

// FromCDense copies any gonum complex matrix into a new *Matrix.
//
// Errors:
//   - ErrNilMatrix when src is nil or a nil *mat.CDense.
func FromCDense(src mat.CMatrix) (*Matrix, error) {
	if d, ok := src.(*mat.CDense); src == nil || (ok && d == nil) {
		return nil, matrixErrorf(opFromCDense, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	res := newZeros(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			res.data[i*cols+j] = complexnum.FromComplex128(src.At(i, j))
		}
	}

	return res, nil
}
