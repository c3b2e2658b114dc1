// Package triangular solves dense triangular systems by forward and back
// substitution, in place on the right-hand side.
//
// All routines take the n×n triangular factor as a row-major flat slice
// (only the relevant triangle is read; the other triangle may hold
// anything, which is exactly how the compact QR form stores R above the
// reflector tails) and overwrite b with the solution x.
//
// Four orientations are provided:
//
//	SolveUpper           Rx = b   back substitution
//	SolveLower           Lx = b   forward substitution
//	SolveUpperTransposed Rᵀx = b  forward substitution over R's columns
//	SolveLowerTransposed Lᵀx = b  back substitution over L's columns
//
// An exactly zero diagonal element means the system is singular. Rather
// than dividing through and handing the caller Inf/NaN, every routine
// stops and returns ErrSingular wrapped with the offending index; the
// caller decides whether that is fatal. No other failure mode exists —
// inputs are plain slices and the loops are branch-free otherwise.
//
// Complexity is O(n²) time, O(1) extra space for every routine. The
// functions are pure computations: no shared state, safe to call from
// multiple goroutines on distinct slices.
package triangular
