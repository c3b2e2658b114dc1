// SPDX-License-Identifier: MIT
// Dense is a concrete, row-major matrix of float64 values, storing elements
// in a flat slice for performance and cache friendliness. It is the dense
// storage type consumed and produced by the qr and triangular packages.

package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrDimensionMismatch indicates that operand shapes are not conformable.
var ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

// ErrNilMatrix indicates that a nil *Dense or *CSC was passed to an operation.
var ErrNilMatrix = errors.New("matrix: matrix is nil")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero value is not usable; construct through NewDense and friends.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseData creates an r×c Dense matrix that adopts data as its backing
// storage (no copy). len(data) must equal rows*cols.
// Complexity: O(1).
func NewDenseData(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseData: len(data)=%d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseRows creates a Dense matrix from a slice of equally sized rows,
// copying every element. Handy for literals in tests and examples.
// Complexity: O(r*c).
func NewDenseRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, r*c)
	for i, row := range rows {
		// Reject ragged input
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseRows: row %d has %d elements, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		copy(data[i*c:(i+1)*c], row)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// MustDenseRows is NewDenseRows that panics on error. For tests and examples.
func MustDenseRows(rows [][]float64) *Dense {
	m, err := NewDenseRows(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Data exposes the row-major backing slice. The slice is owned by the
// matrix: it stays valid until the next Reshape that grows the matrix, and
// writing to it writes to the matrix. Hot paths in qr and triangular index
// it directly to skip per-element bounds checks.
// Complexity: O(1).
func (m *Dense) Data() []float64 {
	return m.data
}

// Reshape resizes the matrix to rows×cols, reusing the backing slice when
// its capacity suffices and reallocating otherwise. Element values after a
// Reshape are unspecified; callers that need zeros call Zero next.
// This is the scratch-reuse primitive the solver leans on between solves of
// differently sized systems.
// Complexity: O(1) when capacity suffices, O(r*c) otherwise.
func (m *Dense) Reshape(rows, cols int) error {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimensions
	}
	n := rows * cols
	if cap(m.data) >= n {
		m.data = m.data[:n] // reuse existing storage
	} else {
		m.data = make([]float64, n) // grow
	}
	m.r, m.c = rows, cols

	return nil
}

// Zero sets every element to 0 without reallocating.
// Complexity: O(r*c).
func (m *Dense) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// SetFrom reshapes the matrix to src's dimensions and copies src's
// elements. src is never mutated.
// Complexity: O(r*c).
func (m *Dense) SetFrom(src *Dense) error {
	if src == nil {
		return ErrNilMatrix
	}
	if err := m.Reshape(src.r, src.c); err != nil {
		return err
	}
	copy(m.data, src.data)

	return nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
