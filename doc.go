// Package qrkit solves linear systems and least-squares problems through
// orthogonal-triangular (QR) factorization — dense Householder QR with an
// in-place compact representation, and the symbolic (structure-only)
// analysis that sparse QR factorization requires.
//
// 🚀 What is qrkit?
//
//	A focused, pure-Go numerical library that brings together:
//		• Householder reflectors: construction and rank-1 application
//		• Dense QR: column-major, in-place, implicit Q + explicit R
//		• Linear solving: square systems and least-squares, multi-RHS
//		• Triangular systems: forward/back substitution, transpose variants
//		• Sparse symbolic analysis: exact nonzero counts for R and V
//		  before a single floating-point operation is spent
//
// ✨ Why choose qrkit?
//
//   - Predictable numerics – one documented sign convention, deterministic
//     results for identical inputs
//   - Explicit failure taxonomy – invalid shapes, singular systems and
//     structural failures are distinct sentinel errors, never silent NaNs
//   - Pure Go – no cgo, no hidden deps
//   - Memory-frugal – reflectors overwrite the eliminated entries; scratch
//     buffers live inside solver instances and are reused across solves
//
// Everything is organized under five subpackages:
//
//	matrix/      — dense (row-major) and compressed-sparse-column storage
//	householder/ — reflector construction and application kernels
//	triangular/  — dense triangular substitution routines
//	qr/          — the in-place decomposition and the linear solver on top
//	symbolic/    — structural pre-pass for sparse QR (row lists, leftmost
//	               indices, elimination tree, nnz(R)/nnz(V) prediction)
//
// Quick example:
//
//	A := matrix.MustDenseRows([][]float64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}})
//	b := matrix.MustDenseRows([][]float64{{1}, {2}, {3}})
//	x, _ := matrix.NewDense(3, 1)
//
//	s := qr.NewSolver()
//	if !s.SetA(A) {
//	    log.Fatal(s.Err())
//	}
//	if err := s.Solve(b, x); err != nil {
//	    log.Fatal(err)
//	}
//
// Solver instances are not reentrant; use one instance per goroutine.
//
//	go get github.com/katalvlaran/qrkit
package qrkit
