// SPDX-License-Identifier: MIT
// Reference dense operations used by the solver's quality checks, the
// examples, and the property tests. All functions perform strict fail-fast
// validation, allocate a fresh result, and never mutate their operands.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
// Loop order is i→k→j over row-major strides with a zero-skip on A[i,k],
// so the inner loop walks both B and C contiguously.
// Complexity: O(r*n*c) time, O(r*c) space for the result.
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner dimensions differ).
func Mul(a, b *Dense) (*Dense, error) {
	// Validate operands
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	// Allocate result
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// row-major multiplication into res.data
	// a.data layout: i*a.c + k
	// b.data layout: k*b.c + j
	var i, j, k int
	var av float64
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
// Complexity: O(r*c) time and space.
// Errors: ErrNilMatrix.
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}

	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// data[i*c + j] → res.data[j*r + i]
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// MatVec computes y = A·x for a dense A and a vector x of length A.Cols().
// Complexity: O(r*c) time, O(r) space.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != A.Cols()).
func MatVec(a *Dense, x []float64) ([]float64, error) {
	if a == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != a.c {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("len(x)=%d, want %d: %w", len(x), a.c, ErrDimensionMismatch))
	}

	y := make([]float64, a.r)
	var i, k, rowOffset int
	var sum float64
	for i = 0; i < a.r; i++ {
		rowOffset = i * a.c
		sum = 0
		for k = 0; k < a.c; k++ {
			sum += a.data[rowOffset+k] * x[k]
		}
		y[i] = sum
	}

	return y, nil
}
