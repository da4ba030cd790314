// Package matrix implements dense complex matrices over complexnum.Number.
//
// The matrix package provides:
//
//   - Matrix: a rows×cols table stored flat in row-major order, with bounds-
//     checked At/Set accessors.
//   - Element-wise algebra (Add, Sub, Scale, Negate) and the matrix product
//     Mul, all returning freshly allocated results.
//   - A bridge to package vector: FromVector builds an N×1 column matrix,
//     ToVector reverses it, and MulVec multiplies through that bridge so one
//     product kernel serves both matrix×matrix and matrix×vector.
//   - Interop with gonum: ToCDense and FromCDense convert to and from
//     gonum.org/v1/gonum/mat complex matrices.
//
// Shape violations are reported as ErrShapeMismatch and bad indices as
// ErrOutOfRange; callers match them with errors.Is.
package matrix
