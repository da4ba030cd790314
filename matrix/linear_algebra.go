// SPDX-License-Identifier: MIT

// Package matrix - matrix algebra kernels.
//
// Purpose:
//   - Element-wise Add/Sub/Scale/Negate over the flat buffer.
//   - The single product kernel Mul, also used by MulVec.
//
// Determinism:
//   - Element-wise kernels walk the buffer 0..n-1.
//   - Mul walks j (rows of a) → k (cols of b) → h (inner, ascending) and
//     accumulates each cell from a fresh zero.
//
// All scalar work is delegated to complexnum; operands are never mutated and
// each call allocates exactly one result.

package matrix

import "github.com/katalvlaran/qlinalg/complexnum"

// Add returns the element-wise sum a + b.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (shapes differ).
//
// Complexity: O(r*c).
func Add(a, b *Matrix) (*Matrix, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := newZeros(a.r, a.c)
	for idx := range a.data {
		res.data[idx] = a.data[idx].Add(b.data[idx])
	}

	return res, nil
}

// Sub returns a − b, computed as a + (−b).
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
func Sub(a, b *Matrix) (*Matrix, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	nb, _ := Negate(b) // b is known non-nil here

	return Add(a, nb)
}

// Scale returns m with every element multiplied by the scalar s.
//
// Errors:
//   - ErrNilMatrix.
func Scale(m *Matrix, s complexnum.Number) (*Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newZeros(m.r, m.c)
	for idx, x := range m.data {
		res.data[idx] = s.Mul(x)
	}

	return res, nil
}

// Negate returns the additive inverse −m.
//
// Errors:
//   - ErrNilMatrix.
func Negate(m *Matrix) (*Matrix, error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opNegate, err)
	}
	res := newZeros(m.r, m.c)
	for idx, x := range m.data {
		res.data[idx] = x.Neg()
	}

	return res, nil
}

// Mul returns the matrix product a × b with shape (a.Rows, b.Cols), where
//
//	res[j,k] = Σ_{h=0}^{a.Cols−1} a[j,h] · b[h,k]
//
// Each cell starts from Zero() and accumulates h in ascending order.
//
// Inputs: a (r×n) and b (n×c), both non-nil; n may be 0.
// Returns: a new r×c matrix; with n == 0 every cell is Zero().
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (a.Cols != b.Rows).
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.r, a.c, b.c
	res := newZeros(rows, cols)

	var j, k, h int
	for j = 0; j < rows; j++ {
		rowA := j * inner
		for k = 0; k < cols; k++ {
			sum := complexnum.Zero()
			for h = 0; h < inner; h++ {
				sum = sum.Add(a.data[rowA+h].Mul(b.data[h*cols+k]))
			}
			res.data[j*cols+k] = sum
		}
	}

	return res, nil
}
