// Package householder provides the reflector kernels underneath the dense
// QR decomposition: constructing a Householder reflector for a column
// segment, and applying it as a rank-1 update to vectors or to trailing
// matrix columns.
//
// A Householder reflector is the orthogonal transformation
//
//	Q = I − gamma·v·vᵀ
//
// chosen so that Q applied to a vector zeroes every entry of the vector
// below its leading one. The reflector is stored compactly: v's leading
// entry is an implicit 1 that never occupies storage, the remaining
// entries overwrite the column segment they eliminated, and gamma is one
// scalar per reflector.
//
// Sign convention:
//
// ComputeReflector uses the cancellation-safe choice in which the scalar
// tau carries the sign of the pivot entry, i.e. v = a + sign(a₀)·‖a‖·e₁.
// Consequently the value written into the pivot slot — the diagonal of R
// in the QR decomposition — is −sign(a₀)·‖a‖. This matches the
// LAPACK-style convention; callers that depend on R's diagonal signs can
// rely on it being reproducible across runs and platforms.
//
// Numerical safety:
//
//   - The segment is scaled by its maximum magnitude before the norm is
//     accumulated, so squaring cannot overflow or underflow first.
//   - An all-zero segment yields gamma = 0: the identity reflector.
//     This is a valid degenerate state, not an error — rank-deficient
//     inputs factorize; their deficiency surfaces later, at solve time.
//   - Non-finite input (NaN or ±Inf anywhere in the segment) is the one
//     structural failure: ErrNonFinite.
//
// All functions are allocation-free and single-threaded; complexity is
// linear in the segment length.
package householder
