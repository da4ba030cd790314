// SPDX-License-Identifier: MIT
// Package matrix: canonical operand checks.
//
// Validators return plain sentinel errors (no wrapping) so call sites can
// wrap uniformly with their own operation tag. All checks are O(1).

package matrix

import "math"

// validateNotNil ensures every operand is non-nil.
func validateNotNil(ms ...*Matrix) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// validateDims ensures rows, cols >= 0 and that rows*cols fits in an int.
//
// Inputs: requested row and column counts.
// Returns: nil or ErrShapeMismatch.
// Complexity: O(1).
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrShapeMismatch
	}
	// rows*cols must not wrap, or the buffer would be shorter than the shape.
	if cols != 0 && rows > math.MaxInt/cols {
		return ErrShapeMismatch
	}

	return nil
}

// validateShape ensures the dimensions are valid and that n elements fill
// them exactly.
func validateShape(rows, cols, n int) error {
	if err := validateDims(rows, cols); err != nil {
		return err
	}
	if rows*cols != n {
		return ErrShapeMismatch
	}

	return nil
}

// validateSameShape ensures a and b are non-nil with identical (rows, cols).
func validateSameShape(a, b *Matrix) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return ErrShapeMismatch
	}

	return nil
}

// validateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
func validateMulCompatible(a, b *Matrix) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrShapeMismatch
	}

	return nil
}
