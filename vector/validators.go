// SPDX-License-Identifier: MIT
// Package vector: shared operand checks.
// Validators return plain sentinels; call sites wrap them with their tag.

package vector

// validateNotNil ensures every operand is non-nil.
func validateNotNil(vs ...*Vector) error {
	for _, v := range vs {
		if v == nil {
			return ErrNilVector
		}
	}

	return nil
}

// validateSameLen ensures a and b are non-nil and of equal length.
func validateSameLen(a, b *Vector) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if len(a.data) != len(b.data) {
		return ErrDimensionMismatch
	}

	return nil
}
