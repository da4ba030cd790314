// SPDX-License-Identifier: MIT

// Package complexnum - scalar field operations.
//
// Purpose:
//   - Provide the complex scalar every higher layer delegates to.
//   - Keep every operation pure: operands by value, fresh result, no state.
//
// Complexity quicksheet:
//   - All operations are O(1) except Sum, which is O(n).

package complexnum

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// ---------- Formatting literals ----------
const (
	_fmtPlus  = "+"
	_fmtMinus = "-"
	_fmtUnit  = "i"
	_fmtInf   = "inf"
)

// Number is an immutable complex scalar re + im·i.
// The zero value is the additive identity (0, 0).
type Number struct {
	re float64 // real part
	im float64 // imaginary part
}

// New returns the complex number re + im·i.
// Any pair of floats is a valid Number.
func New(re, im float64) Number {
	return Number{re: re, im: im}
}

// Zero returns the additive identity (0, 0).
func Zero() Number { return Number{} }

// One returns the multiplicative identity (1, 0).
func One() Number { return Number{re: 1} }

// I returns the imaginary unit (0, 1).
func I() Number { return Number{im: 1} }

// FromComplex128 converts a built-in complex128 into a Number.
func FromComplex128(c complex128) Number {
	return Number{re: real(c), im: imag(c)}
}

// Complex128 returns n as a built-in complex128.
func (n Number) Complex128() complex128 {
	return complex(n.re, n.im)
}

// Real returns the real part of n.
func (n Number) Real() float64 { return n.re }

// Imag returns the imaginary part of n.
func (n Number) Imag() float64 { return n.im }

// Add returns n + x.
func (n Number) Add(x Number) Number {
	return Number{re: n.re + x.re, im: n.im + x.im}
}

// Sub returns n - x, computed as n + (-x).
func (n Number) Sub(x Number) Number {
	return n.Add(x.Neg())
}

// Mul returns n · x using (a+bi)(c+di) = (ac−bd) + (ad+bc)i.
//
// Inputs: any two numbers; operands are not modified.
// Returns: the product, each partial product rounded on its own.
// Complexity: O(1).
//
// The float64 conversions keep the compiler from fusing a product and the
// following add into one FMA, so every platform rounds identically.
func (n Number) Mul(x Number) Number {
	return Number{
		re: float64(n.re*x.re) - float64(n.im*x.im),
		im: float64(n.re*x.im) + float64(n.im*x.re),
	}
}

// Neg returns the additive inverse (−re, −im).
func (n Number) Neg() Number {
	return Number{re: -n.re, im: -n.im}
}

// Div returns n / x by multiplication with the conjugate of x.
//
// Errors:
//   - ErrDivisionByZero when x is exactly (0, 0). Values close to zero are
//     divided normally and may overflow to ±Inf.
func (n Number) Div(x Number) (Number, error) {
	if x.re == 0 && x.im == 0 {
		return Number{}, numberErrorf(opDiv, ErrDivisionByZero)
	}
	den := float64(x.re*x.re) + float64(x.im*x.im)

	return Number{
		re: (float64(n.re*x.re) + float64(n.im*x.im)) / den,
		im: (float64(x.re*n.im) - float64(n.re*x.im)) / den,
	}, nil
}

// Abs returns the modulus sqrt(re² + im²).
func (n Number) Abs() float64 {
	return math.Sqrt(float64(n.re*n.re) + float64(n.im*n.im))
}

// Conj returns the complex conjugate (re, −im).
func (n Number) Conj() Number {
	return Number{re: n.re, im: -n.im}
}

// Sum folds xs with Add starting from (0, 0); Sum() is Zero().
// Complexity: O(len(xs)).
func Sum(xs ...Number) Number {
	var acc Number
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// ApproxEqual reports whether both components of a and b differ by at most tol.
func ApproxEqual(a, b Number, tol float64) bool {
	return scalar.EqualWithinAbs(a.re, b.re, tol) &&
		scalar.EqualWithinAbs(a.im, b.im, tol)
}

// String renders n as "<re><sign><im>i", e.g. "8-2i" or "0.6+0.6i".
// The "+" is written unless the imaginary text already starts with "-",
// so "-0" and "-inf" carry their own sign and NaN gets a "+".
func (n Number) String() string {
	im := formatFloat(n.im)
	sep := _fmtPlus
	if strings.HasPrefix(im, _fmtMinus) {
		sep = ""
	}

	return formatFloat(n.re) + sep + im + _fmtUnit
}

// formatFloat renders f in the shortest decimal form without an exponent.
// Infinities render as "inf" and "-inf".
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return _fmtInf
	case math.IsInf(f, -1):
		return _fmtMinus + _fmtInf
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
