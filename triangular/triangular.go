package triangular

import (
	"errors"
	"fmt"
)

// ErrSingular indicates an exactly zero diagonal element in the
// triangular factor: the system has no unique solution.
var ErrSingular = errors.New("triangular: zero diagonal element")

// singularAt wraps ErrSingular with the routine name and diagonal index.
func singularAt(op string, i int) error {
	return fmt.Errorf("%s: diagonal %d: %w", op, i, ErrSingular)
}

// SolveUpper solves Rx = b for upper-triangular R by back substitution.
// r is row-major n×n (entries below the diagonal are ignored); b is
// overwritten with x.
// Errors: ErrSingular on an exactly zero diagonal.
// Complexity: O(n²).
func SolveUpper(r, b []float64, n int) error {
	var sum, diag float64
	var i, j, rowOffset int
	for i = n - 1; i >= 0; i-- {
		rowOffset = i * n
		diag = r[rowOffset+i]
		if diag == 0 {
			return singularAt("SolveUpper", i)
		}
		sum = b[i]
		for j = i + 1; j < n; j++ {
			sum -= r[rowOffset+j] * b[j]
		}
		b[i] = sum / diag
	}

	return nil
}

// SolveLower solves Lx = b for lower-triangular L by forward substitution.
// l is row-major n×n (entries above the diagonal are ignored); b is
// overwritten with x.
// Errors: ErrSingular on an exactly zero diagonal.
// Complexity: O(n²).
func SolveLower(l, b []float64, n int) error {
	var sum, diag float64
	var i, j, rowOffset int
	for i = 0; i < n; i++ {
		rowOffset = i * n
		diag = l[rowOffset+i]
		if diag == 0 {
			return singularAt("SolveLower", i)
		}
		sum = b[i]
		for j = 0; j < i; j++ {
			sum -= l[rowOffset+j] * b[j]
		}
		b[i] = sum / diag
	}

	return nil
}

// SolveUpperTransposed solves Rᵀx = b for upper-triangular R. Rᵀ is lower
// triangular, so this is forward substitution walking R's columns.
// Errors: ErrSingular on an exactly zero diagonal.
// Complexity: O(n²).
func SolveUpperTransposed(r, b []float64, n int) error {
	var sum, diag float64
	var i, j int
	for i = 0; i < n; i++ {
		diag = r[i*n+i]
		if diag == 0 {
			return singularAt("SolveUpperTransposed", i)
		}
		sum = b[i]
		for j = 0; j < i; j++ {
			sum -= r[j*n+i] * b[j] // Rᵀ[i][j] == R[j][i]
		}
		b[i] = sum / diag
	}

	return nil
}

// SolveLowerTransposed solves Lᵀx = b for lower-triangular L. Lᵀ is upper
// triangular, so this is back substitution walking L's columns.
// Errors: ErrSingular on an exactly zero diagonal.
// Complexity: O(n²).
func SolveLowerTransposed(l, b []float64, n int) error {
	var sum, diag float64
	var i, j int
	for i = n - 1; i >= 0; i-- {
		diag = l[i*n+i]
		if diag == 0 {
			return singularAt("SolveLowerTransposed", i)
		}
		sum = b[i]
		for j = i + 1; j < n; j++ {
			sum -= l[j*n+i] * b[j] // Lᵀ[i][j] == L[j][i]
		}
		b[i] = sum / diag
	}

	return nil
}
