// Package qlinalg is a small complex linear-algebra toolkit for the
// exercises of introductory quantum computing: complex scalars, complex
// vectors and complex matrices.
//
// Everything is organized under three subpackages, each depending only on
// the ones above it in this list:
//
//	complexnum/ — the complex scalar Number, Cartesian and Polar views
//	vector/     — fixed-length complex vectors, inner product, norm, distance
//	matrix/     — dense row-major complex matrices, products, vector bridge
//
// Values are immutable (matrix.Set aside), every operation returns a fresh
// result, and there is no package-level mutable state, so independent values
// can be used from many goroutines without locking.
//
// Contract violations are reported as wrapped sentinel errors:
//
//	complexnum.ErrDivisionByZero  division by exactly (0, 0)
//	vector.ErrDimensionMismatch   operands of different lengths
//	matrix.ErrShapeMismatch       bad construction shape, Add/Sub shapes, Mul inner dims
//	matrix.ErrOutOfRange          At/Set outside the matrix
//
// Quick example:
//
//	m, _ := matrix.New([]complexnum.Number{
//		complexnum.New(1, 0), complexnum.New(2, 0),
//		complexnum.New(3, 0), complexnum.New(4, 0),
//	}, 2, 2)
//	y, _ := matrix.MulVec(m, vector.New(complexnum.New(1, 0), complexnum.New(2, 0)))
//	fmt.Println(y) // [5+0i, 11+0i]
package qlinalg
