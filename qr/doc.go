// Package qr implements dense Householder QR factorization and the linear
// solver built on top of it.
//
// Overview:
//
//   - Decomposition factors an m×n matrix A (m ≥ n) into an implicit
//     orthogonal Q — stored as n Householder reflectors plus one gamma
//     scalar each — and an explicit upper-triangular R. The factorization
//     is column-major and in place: reflector tails overwrite the entries
//     they eliminated, R occupies the upper triangle, and no Q matrix is
//     ever materialized.
//   - Solver orchestrates Decomposition, the householder kernels, and
//     triangular back substitution to solve A·x = b for one or many
//     right-hand-side columns: each column is swept with Qᵀ (reflector by
//     reflector) and then solved against R. For overdetermined systems
//     (m > n) the result is the least-squares solution, because only the
//     leading n rows of Qᵀb reach the triangular solve.
//
// State machine:
//
//	Both types move uninitialized → decomposed(success) | decomposed(failed)
//	on every Decompose/SetA; a failed factorization leaves the solver in a
//	not-ready state in which Solve and Quality refuse to run, and no
//	partial result leaks.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidShape: wide systems (more columns than rows) and any
//     dimension mismatch among A, B and X. Always surfaced, never silently
//     corrected.
//   - ErrStructuralFailure: reflector construction was impossible
//     (non-finite input). Reported through SetA's boolean and Err().
//   - triangular.ErrSingular: surfaces from Solve when R has an exactly
//     zero diagonal. Rank deficiency is NOT a decomposition failure — a
//     zero gamma is a valid identity reflector, factorization proceeds,
//     and the deficiency shows up in Quality() and at solve time.
//   - ErrNotReady: Solve/Quality called with no successful SetA behind them.
//
// Ownership and concurrency:
//
//	A and B are never mutated (ModifiesA/ModifiesB are both false); all
//	working storage is internal to the instance and reused across calls,
//	so buffers returned by QR() and Gammas() are only valid until the next
//	Decompose. Instances are not reentrant; independent instances are safe
//	to use from independent goroutines. Within one Solve the per-column
//	work shares only read-only factorization state.
//
// Complexity: Decompose is O(m·n²); Solve is O(m·n) per right-hand-side
// column.
package qr
