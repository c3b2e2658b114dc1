// Package matrix_test contains unit tests for the Dense storage type and
// the reference operations built on it.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qrkit/matrix"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Construction and validation
// ------------------------------------------------------------------------

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseData_LengthMismatch(t *testing.T) {
	_, err := matrix.NewDenseData(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNewDenseRows_Ragged(t *testing.T) {
	_, err := matrix.NewDenseRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 42))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 42.0, v)

	// Out-of-bounds access must fail, not wrap around.
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	err = m.Set(0, 3, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestDense_DataIsRowMajor(t *testing.T) {
	m := matrix.MustDenseRows([][]float64{{1, 2}, {3, 4}})
	require.Equal(t, []float64{1, 2, 3, 4}, m.Data())
}

// ------------------------------------------------------------------------
// 2. Reshape, Clone, SetFrom
// ------------------------------------------------------------------------

func TestDense_ReshapeReusesStorage(t *testing.T) {
	m, err := matrix.NewDense(4, 4)
	require.NoError(t, err)

	// Shrinking keeps the same backing array.
	require.NoError(t, m.Reshape(2, 3))
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Len(t, m.Data(), 6)

	// Growing past capacity reallocates but stays consistent.
	require.NoError(t, m.Reshape(5, 5))
	require.Len(t, m.Data(), 25)

	require.ErrorIs(t, m.Reshape(0, 1), matrix.ErrInvalidDimensions)
}

func TestDense_CloneIsDeep(t *testing.T) {
	m := matrix.MustDenseRows([][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 99))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v) // original untouched
}

func TestDense_SetFrom(t *testing.T) {
	src := matrix.MustDenseRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	dst, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, dst.SetFrom(src))
	require.Equal(t, src.Rows(), dst.Rows())
	require.Equal(t, src.Cols(), dst.Cols())
	require.Equal(t, src.Data(), dst.Data())

	require.ErrorIs(t, dst.SetFrom(nil), matrix.ErrNilMatrix)
}

// ------------------------------------------------------------------------
// 3. Reference operations
// ------------------------------------------------------------------------

func TestMul_KnownProduct(t *testing.T) {
	a := matrix.MustDenseRows([][]float64{{1, 2}, {3, 4}})
	b := matrix.MustDenseRows([][]float64{{2, 0}, {1, 2}})
	res, err := matrix.Mul(a, b)
	require.NoError(t, err)
	// A*B = [[4,4],[10,8]]
	require.Equal(t, []float64{4, 4, 10, 8}, res.Data())
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := matrix.MustDenseRows([][]float64{{1, 2, 3}})
	b := matrix.MustDenseRows([][]float64{{1, 2}, {3, 4}})
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	m := matrix.MustDenseRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Data())
}

func TestMatVec(t *testing.T) {
	a := matrix.MustDenseRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -1}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
