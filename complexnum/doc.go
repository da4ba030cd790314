// Package complexnum implements the complex scalar used by the vector and
// matrix packages of qlinalg.
//
// A Number is an immutable value: every operation takes its operands by
// value and returns a fresh Number, so values may be shared freely between
// goroutines. Equality is exact field-wise equality and the == operator
// works on Number directly; use ApproxEqual when rounding is expected.
//
// Besides field arithmetic the package offers two coordinate views of the
// complex plane:
//
//   - Cartesian{X, Y}: the identity view (real, imaginary).
//   - Polar{Magnitude, Phase}: modulus and angle.
//
// The phase of a Polar value is computed as atan(y/x) by default, which
// folds the left half-plane onto the right one and is undefined for x == 0.
// Pass WithPhaseFullQuadrant() to use atan2(y, x) instead.
//
// Division is the only fallible operation; it returns ErrDivisionByZero when
// the divisor is exactly (0, 0).
package complexnum
