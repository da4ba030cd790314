// Package vector implements fixed-length complex vectors on top of
// complexnum.Number.
//
// A *Vector is built once from an explicit sequence and never changes
// afterwards: the constructor copies its input, accessors hand out copies,
// and every operation (Add, Sub, Scale, Negate) returns a new *Vector.
// Sharing a *Vector between goroutines is therefore safe.
//
// The inner product is conjugate-linear in its first argument and linear in
// its second:
//
//	<a, b> = Σ conj(a[i]) · b[i]
//
// Norm and Distance are derived from it. Binary operations require equal
// lengths and report ErrDimensionMismatch otherwise.
package vector
