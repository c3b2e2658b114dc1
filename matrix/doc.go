// Package matrix offers the storage types the qrkit solvers operate on.
//
// The matrix package provides:
//
//   - Dense: a row-major matrix backed by a flat []float64, with
//     bounds-checked element access, cheap Reshape for scratch reuse, and
//     the small set of reference operations (Mul, Transpose, MatVec) the
//     solvers and their tests need.
//   - CSC: compressed-sparse-column storage (column pointers, row indices,
//     values) as consumed read-only by the symbolic analyzer. Row indices
//     within a column are not required to be sorted.
//
// Dense matrices are best for the dense QR path; CSC exists so that
// structure-only passes never pay for materializing zeros.
//
// All constructors validate dimensions and structure up front and return
// sentinel errors (ErrInvalidDimensions, ErrIndexOutOfBounds,
// ErrDimensionMismatch, ErrBadSparseStructure); no operation silently
// corrects a malformed input.
package matrix
