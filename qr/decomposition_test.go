// Package qr_test verifies the Householder factorization against the
// defining identities (A = Q·R, QᵀQ = I) and its failure contract, and the
// solver against exact, least-squares, and degenerate systems.
package qr_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qrkit/matrix"
	"github.com/katalvlaran/qrkit/qr"
	"github.com/stretchr/testify/require"
)

// randomDense builds a rows×cols matrix with standard normal entries.
func randomDense(rows, cols int, r *rand.Rand) *matrix.Dense {
	d, _ := matrix.NewDense(rows, cols)
	data := d.Data()
	for i := range data {
		data[i] = r.NormFloat64()
	}

	return d
}

// explicitQ materializes the orthogonal factor by applying the stored
// reflectors, innermost first, to each column of the identity.
func explicitQ(d *qr.Decomposition) *matrix.Dense {
	m, n := d.Rows(), d.Cols()
	cols := d.QR()
	gammas := d.Gammas()

	q, _ := matrix.NewDense(m, m)
	data := q.Data()
	col := make([]float64, m)
	for k := 0; k < m; k++ {
		for i := range col {
			col[i] = 0
		}
		col[k] = 1

		// Q·e_k = Q_0·(Q_1·(…·(Q_{n-1}·e_k))); each reflector has an
		// implicit 1 at its pivot slot.
		for j := n - 1; j >= 0; j-- {
			u := cols[j]
			sum := col[j]
			for i := j + 1; i < m; i++ {
				sum += u[i] * col[i]
			}
			sum *= gammas[j]
			col[j] -= sum
			for i := j + 1; i < m; i++ {
				col[i] -= u[i] * sum
			}
		}

		for i := 0; i < m; i++ {
			data[i*m+k] = col[i]
		}
	}

	return q
}

// requireAllClose asserts element-wise closeness of two equally shaped
// dense matrices.
func requireAllClose(t *testing.T, want, got *matrix.Dense, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	w, g := want.Data(), got.Data()
	for i := range w {
		require.InDelta(t, w[i], g[i], tol, "flat index %d", i)
	}
}

// ------------------------------------------------------------------------
// 1. Defining identities
// ------------------------------------------------------------------------

func TestDecompose_ReconstructsA(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	a := randomDense(6, 4, rng)

	d := qr.NewDecomposition()
	require.True(t, d.Decompose(a))
	require.True(t, d.Succeeded())

	q := explicitQ(d)
	r, _ := matrix.NewDense(1, 1)
	require.NoError(t, d.R(r, false)) // full 6×4 R

	qr2, err := matrix.Mul(q, r)
	require.NoError(t, err)
	requireAllClose(t, a, qr2, 1e-10)
}

func TestDecompose_Orthogonality(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	a := randomDense(5, 5, rng)

	d := qr.NewDecomposition()
	require.True(t, d.Decompose(a))

	q := explicitQ(d)
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	prod, err := matrix.Mul(qt, q)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			v, atErr := prod.At(i, j)
			require.NoError(t, atErr)
			require.InDelta(t, want, v, 1e-12, "QᵀQ at (%d,%d)", i, j)
		}
	}
}

func TestDecompose_DiagonalSignConvention(t *testing.T) {
	// Single column [3,4]: norm 5, positive pivot ⇒ R[0][0] = −5.
	a := matrix.MustDenseRows([][]float64{{3}, {4}})

	d := qr.NewDecomposition()
	require.True(t, d.Decompose(a))

	r, _ := matrix.NewDense(1, 1)
	require.NoError(t, d.R(r, true))
	diag, err := r.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, -5.0, diag, 1e-12)
}

// ------------------------------------------------------------------------
// 2. Determinism and buffer reuse
// ------------------------------------------------------------------------

func TestDecompose_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	a := randomDense(7, 3, rng)

	first := qr.NewDecomposition()
	second := qr.NewDecomposition()
	require.True(t, first.Decompose(a))
	require.True(t, second.Decompose(a))

	// Bit-identical, not merely close.
	require.Equal(t, first.Gammas(), second.Gammas())
	r1, _ := matrix.NewDense(1, 1)
	r2, _ := matrix.NewDense(1, 1)
	require.NoError(t, first.R(r1, true))
	require.NoError(t, second.R(r2, true))
	require.Equal(t, r1.Data(), r2.Data())
}

func TestDecompose_InstanceReuseAcrossShapes(t *testing.T) {
	rng := rand.New(rand.NewSource(24))
	d := qr.NewDecomposition()

	big := randomDense(8, 5, rng)
	require.True(t, d.Decompose(big))

	small := randomDense(3, 2, rng)
	require.True(t, d.Decompose(small))
	require.Equal(t, 3, d.Rows())
	require.Equal(t, 2, d.Cols())

	q := explicitQ(d)
	r, _ := matrix.NewDense(1, 1)
	require.NoError(t, d.R(r, false))
	prod, err := matrix.Mul(q, r)
	require.NoError(t, err)
	requireAllClose(t, small, prod, 1e-12)
}

// ------------------------------------------------------------------------
// 3. R extraction shapes
// ------------------------------------------------------------------------

func TestR_CompactAndFull(t *testing.T) {
	rng := rand.New(rand.NewSource(25))
	a := randomDense(6, 3, rng)

	d := qr.NewDecomposition()
	require.True(t, d.Decompose(a))

	compact, _ := matrix.NewDense(1, 1)
	require.NoError(t, d.R(compact, true))
	require.Equal(t, 3, compact.Rows())
	require.Equal(t, 3, compact.Cols())

	full, _ := matrix.NewDense(1, 1)
	require.NoError(t, d.R(full, false))
	require.Equal(t, 6, full.Rows())
	require.Equal(t, 3, full.Cols())

	// The compact block matches full's leading rows; everything below the
	// diagonal is an explicit zero.
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			v, err := full.At(i, j)
			require.NoError(t, err)
			if i > j {
				require.Zero(t, v, "below diagonal at (%d,%d)", i, j)
			}
			if i < 3 {
				c, cErr := compact.At(i, j)
				require.NoError(t, cErr)
				require.Equal(t, c, v)
			}
		}
	}
}

// ------------------------------------------------------------------------
// 4. Failure contract
// ------------------------------------------------------------------------

func TestDecompose_RejectsNilAndWide(t *testing.T) {
	d := qr.NewDecomposition()

	require.False(t, d.Decompose(nil))
	require.ErrorIs(t, d.Err(), qr.ErrNilMatrix)

	wide := matrix.MustDenseRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.False(t, d.Decompose(wide))
	require.ErrorIs(t, d.Err(), qr.ErrInvalidShape)
}

func TestDecompose_ZeroColumnProceeds(t *testing.T) {
	a := matrix.MustDenseRows([][]float64{
		{1, 0, 2},
		{0, 0, 3},
		{4, 0, 5},
	})

	d := qr.NewDecomposition()
	require.True(t, d.Decompose(a))
	require.True(t, d.Succeeded())
	// Reflector 1 saw an all-zero subcolumn: identity reflector.
	require.Zero(t, d.Gammas()[1])
}

func TestDecompose_NonFiniteFails(t *testing.T) {
	a := matrix.MustDenseRows([][]float64{
		{1, 2},
		{math.NaN(), 3},
		{4, 5},
	})

	d := qr.NewDecomposition()
	require.False(t, d.Decompose(a))
	require.False(t, d.Succeeded())
	require.ErrorIs(t, d.Err(), qr.ErrStructuralFailure)

	// Not-ready state: R must refuse to extract.
	r, _ := matrix.NewDense(1, 1)
	require.ErrorIs(t, d.R(r, true), qr.ErrNotReady)
}
