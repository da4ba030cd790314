// SPDX-License-Identifier: MIT
// Package complexnum: sentinel error set.
// Callers match these with errors.Is; operations wrap them with an
// operation tag via numberErrorf.

package complexnum

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by Div when the divisor is exactly (0, 0).
// No near-zero threshold is applied.
var ErrDivisionByZero = errors.New("complexnum: division by zero")

// Operation tags used in error wrapping.
const (
	opDiv = "Div"
)

// numberErrorf wraps err with the given operation tag.
func numberErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
