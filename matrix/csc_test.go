// Package matrix_test: unit tests for the compressed-sparse-column type.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qrkit/matrix"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation of raw CSC arrays
// ------------------------------------------------------------------------

func TestNewCSC_Valid(t *testing.T) {
	// 3x3 with nonzeros (0,0)=1, (2,0)=2, (1,1)=3, (0,2)=4
	m, err := matrix.NewCSC(3, 3,
		[]int{0, 2, 3, 4},
		[]int{0, 2, 1, 0},
		[]float64{1, 2, 3, 4},
	)
	require.NoError(t, err)
	require.Equal(t, 4, m.NumNonZero())

	start, end, err := m.ColumnRange(1)
	require.NoError(t, err)
	require.Equal(t, 2, start)
	require.Equal(t, 3, end)

	_, _, err = m.ColumnRange(3)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestNewCSC_Malformed(t *testing.T) {
	// Wrong pointer length
	_, err := matrix.NewCSC(2, 2, []int{0, 1}, []int{0}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrBadSparseStructure)

	// Decreasing pointers
	_, err = matrix.NewCSC(2, 2, []int{0, 1, 0}, []int{0}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrBadSparseStructure)

	// Row index out of range
	_, err = matrix.NewCSC(2, 2, []int{0, 1, 1}, []int{5}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrBadSparseStructure)

	// Value/index count disagrees with pointers
	_, err = matrix.NewCSC(2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrBadSparseStructure)
}

// ------------------------------------------------------------------------
// 2. Dense round trips
// ------------------------------------------------------------------------

func TestCSC_DenseRoundTrip(t *testing.T) {
	d := matrix.MustDenseRows([][]float64{
		{1, 0, 0, 2},
		{0, 3, 0, 0},
		{0, 0, 0, 4},
	})
	s, err := matrix.NewCSCFromDense(d, 0)
	require.NoError(t, err)
	require.Equal(t, 4, s.NumNonZero())
	require.Equal(t, []int{0, 1, 2, 2, 4}, s.ColPtr)

	back, err := s.ToDense()
	require.NoError(t, err)
	require.Equal(t, d.Data(), back.Data())
}

func TestNewCSCFromDense_Tolerance(t *testing.T) {
	d := matrix.MustDenseRows([][]float64{
		{1e-12, 5},
		{-1e-12, 0},
	})
	s, err := matrix.NewCSCFromDense(d, 1e-9)
	require.NoError(t, err)
	require.Equal(t, 1, s.NumNonZero()) // only the 5 survives
	require.Equal(t, []float64{5}, s.Values)

	_, err = matrix.NewCSCFromDense(nil, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
