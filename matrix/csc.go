// SPDX-License-Identifier: MIT
// CSC is compressed-sparse-column storage: a column pointer array, a row
// index array, and a value array representing only the nonzero entries.
// The symbolic package treats CSC matrices as read-only patterns.

package matrix

import (
	"errors"
	"fmt"
)

// ErrBadSparseStructure indicates that CSC arrays are inconsistent
// (pointer lengths, non-monotone column pointers, or row indices out of range).
var ErrBadSparseStructure = errors.New("matrix: malformed sparse structure")

// CSC is a sparse matrix in compressed-sparse-column format.
// Fields are exported because consumers (the symbolic analyzer, a numeric
// sparse factorizer) iterate the raw arrays directly; they must treat them
// as read-only.
//
// Column j occupies entries ColPtr[j]..ColPtr[j+1]-1 of RowIdx and Values.
// Row indices inside a column may appear in any order.
type CSC struct {
	NumRows int       // number of rows
	NumCols int       // number of columns
	ColPtr  []int     // column pointers, length NumCols+1, ColPtr[0]==0
	RowIdx  []int     // row index per stored entry
	Values  []float64 // value per stored entry
}

// NewCSC builds a CSC matrix from raw arrays after validating their
// consistency. The arrays are adopted, not copied.
// Complexity: O(cols + nnz) validation.
// Errors: ErrInvalidDimensions, ErrBadSparseStructure.
func NewCSC(rows, cols int, colPtr, rowIdx []int, values []float64) (*CSC, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Validate pointer array shape
	if len(colPtr) != cols+1 || colPtr[0] != 0 {
		return nil, fmt.Errorf("NewCSC: col pointer length %d, want %d starting at 0: %w", len(colPtr), cols+1, ErrBadSparseStructure)
	}
	// Validate monotone pointers
	for j := 0; j < cols; j++ {
		if colPtr[j+1] < colPtr[j] {
			return nil, fmt.Errorf("NewCSC: col pointers decrease at column %d: %w", j, ErrBadSparseStructure)
		}
	}
	nnz := colPtr[cols]
	if len(rowIdx) != nnz || len(values) != nnz {
		return nil, fmt.Errorf("NewCSC: %d row indices and %d values, want %d: %w", len(rowIdx), len(values), nnz, ErrBadSparseStructure)
	}
	// Validate row indices
	for p, i := range rowIdx {
		if i < 0 || i >= rows {
			return nil, fmt.Errorf("NewCSC: entry %d has row %d outside [0,%d): %w", p, i, rows, ErrBadSparseStructure)
		}
	}

	return &CSC{NumRows: rows, NumCols: cols, ColPtr: colPtr, RowIdx: rowIdx, Values: values}, nil
}

// NewCSCFromDense converts a dense matrix to CSC, keeping entries whose
// magnitude exceeds tol (tol 0 keeps every exact nonzero).
// Complexity: O(r*c).
func NewCSCFromDense(d *Dense, tol float64) (*CSC, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	if tol < 0 {
		tol = 0
	}

	colPtr := make([]int, d.c+1)
	var rowIdx []int
	var values []float64
	// Column-by-column scan so entries land in CSC order
	var i, j int
	var v float64
	for j = 0; j < d.c; j++ {
		for i = 0; i < d.r; i++ {
			v = d.data[i*d.c+j]
			if v > tol || -v > tol || (tol == 0 && v != 0) {
				rowIdx = append(rowIdx, i)
				values = append(values, v)
			}
		}
		colPtr[j+1] = len(values)
	}

	return &CSC{NumRows: d.r, NumCols: d.c, ColPtr: colPtr, RowIdx: rowIdx, Values: values}, nil
}

// NumNonZero returns the number of stored entries.
// Complexity: O(1).
func (m *CSC) NumNonZero() int {
	return m.ColPtr[m.NumCols]
}

// ColumnRange returns the [start, end) entry range of column j.
// Complexity: O(1).
func (m *CSC) ColumnRange(j int) (int, int, error) {
	if j < 0 || j >= m.NumCols {
		return 0, 0, denseErrorf("ColumnRange", 0, j, ErrIndexOutOfBounds)
	}

	return m.ColPtr[j], m.ColPtr[j+1], nil
}

// ToDense materializes the sparse matrix as a Dense, summing duplicates.
// Complexity: O(r*c + nnz).
func (m *CSC) ToDense() (*Dense, error) {
	d, err := NewDense(m.NumRows, m.NumCols)
	if err != nil {
		return nil, err
	}
	for j := 0; j < m.NumCols; j++ {
		for p := m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
			d.data[m.RowIdx[p]*m.NumCols+j] += m.Values[p]
		}
	}

	return d, nil
}
