package qr

import (
	"github.com/katalvlaran/qrkit/householder"
	"github.com/katalvlaran/qrkit/matrix"
)

// Decomposition is an in-place, column-major Householder QR factorization.
//
// After a successful Decompose of an m×n matrix A (m ≥ n):
//
//   - column j of the internal storage holds the reflector tail v_j below
//     the diagonal (the implicit leading 1 is never stored) and R's
//     entries at and above it; the diagonal slot holds R[j][j] = −tau_j;
//   - Gammas()[j] holds the reflector scalar gamma_j;
//   - v_j and gamma_j together fully reconstruct reflector j, and
//     Q = Q_0·Q_1·…·Q_{n-1} with Q_j = I − gamma_j·v_j·v_jᵀ.
//
// Internal buffers are reused across Decompose calls; slices returned by
// QR() and Gammas() must not be retained across a subsequent Decompose.
type Decomposition struct {
	qr     [][]float64 // column-major working copy; qr[j] is column j, length numRows
	gammas []float64   // one reflector scalar per column

	numRows, numCols int
	minLength        int

	decomposed bool  // a Decompose call ran to completion
	failed     bool  // the last Decompose hit a structural failure
	err        error // sentinel describing the last failure, nil on success
}

// NewDecomposition returns an empty decomposition; storage is allocated on
// first use and grown on demand.
func NewDecomposition() *Decomposition {
	return &Decomposition{}
}

// setExpectedMaxSize (re)allocates the column-major storage for a
// rows×cols problem, reusing existing buffers when they are large enough.
func (d *Decomposition) setExpectedMaxSize(rows, cols int) {
	d.numRows, d.numCols = rows, cols
	d.minLength = cols // rows ≥ cols is enforced before this point
	if len(d.qr) < cols {
		grown := make([][]float64, cols)
		copy(grown, d.qr)
		d.qr = grown
	}
	for j := 0; j < cols; j++ {
		if cap(d.qr[j]) < rows {
			d.qr[j] = make([]float64, rows)
		} else {
			d.qr[j] = d.qr[j][:rows]
		}
	}
	if cap(d.gammas) < cols {
		d.gammas = make([]float64, cols)
	} else {
		d.gammas = d.gammas[:cols]
	}
}

// convertToColumnMajor copies row-major A into the internal column slices.
// Complexity: O(m·n).
func (d *Decomposition) convertToColumnMajor(a *matrix.Dense) {
	data := a.Data()
	var i, j int
	for j = 0; j < d.numCols; j++ {
		colQ := d.qr[j]
		for i = 0; i < d.numRows; i++ {
			colQ[i] = data[i*d.numCols+j]
		}
	}
}

// Decompose factors A in place (into internal storage — A itself is never
// mutated). It returns false on:
//
//   - ErrNilMatrix / ErrInvalidShape: nil input or a wide matrix
//     (cols > rows); nothing is computed;
//   - ErrStructuralFailure: non-finite values made a reflector
//     unconstructible; internal state is reset to not-ready.
//
// Rank deficiency does NOT fail: an all-zero subcolumn produces a zero
// gamma (identity reflector) and elimination proceeds, yielding a
// rank-deficient R that callers inspect through Solver.Quality.
//
// Decomposing the same matrix twice produces bit-identical R and gammas.
// Complexity: O(m·n²).
func (d *Decomposition) Decompose(a *matrix.Dense) bool {
	// Reset state on every call
	d.decomposed = false
	d.failed = false
	d.err = nil

	// Validate input
	if a == nil {
		d.err = ErrNilMatrix

		return false
	}
	if a.Rows() < a.Cols() {
		d.err = ErrInvalidShape

		return false
	}

	// Prepare working storage and copy A column-major
	d.setExpectedMaxSize(a.Rows(), a.Cols())
	d.convertToColumnMajor(a)

	// Eliminate column by column: construct reflector j over rows
	// [j, numRows), then apply it to every trailing column.
	for j := 0; j < d.minLength; j++ {
		gamma, err := householder.ComputeReflector(d.qr[j], j, d.numRows)
		if err != nil {
			d.failed = true
			d.err = ErrStructuralFailure

			return false
		}
		d.gammas[j] = gamma
		d.updateA(j)
	}
	d.decomposed = true

	return true
}

// updateA applies reflector w to all columns right of w. The reflector's
// pivot slot holds R[w][w], so the implicit-1 kernel is used: it treats
// v[w] as 1 without ever writing into the slot.
func (d *Decomposition) updateA(w int) {
	u := d.qr[w]
	gamma := d.gammas[w]
	for j := w + 1; j < d.numCols; j++ {
		householder.ApplyReflectorImplicit(d.qr[j], u, gamma, w, d.numRows)
	}
}

// R copies the upper triangle into dst. compact=true reshapes dst to the
// leading numCols×numCols block; compact=false preserves the original
// numRows×numCols shape with explicit zeros below the diagonal.
// Errors: ErrNotReady before a successful Decompose.
// Complexity: O(n²) compact, O(m·n) full.
func (d *Decomposition) R(dst *matrix.Dense, compact bool) error {
	if !d.Succeeded() {
		return ErrNotReady
	}
	if dst == nil {
		return ErrNilMatrix
	}

	rows := d.numRows
	if compact {
		rows = d.numCols
	}
	if err := dst.Reshape(rows, d.numCols); err != nil {
		return err
	}
	dst.Zero()

	data := dst.Data()
	var i, j int
	for j = 0; j < d.numCols; j++ {
		colQ := d.qr[j]
		for i = 0; i <= j; i++ {
			data[i*d.numCols+j] = colQ[i]
		}
	}

	return nil
}

// Gammas exposes the reflector scalars read-only. The slice is reused by
// the next Decompose; do not retain it.
func (d *Decomposition) Gammas() []float64 {
	return d.gammas
}

// QR exposes the internal column-major factorization: QR()[j][i] is row i
// of column j, holding R on and above the diagonal and reflector tails
// below. The buffers are reused by the next Decompose; do not retain them.
func (d *Decomposition) QR() [][]float64 {
	return d.qr
}

// Rows returns the row count of the decomposed matrix.
func (d *Decomposition) Rows() int { return d.numRows }

// Cols returns the column count of the decomposed matrix.
func (d *Decomposition) Cols() int { return d.numCols }

// Succeeded reports whether the last Decompose ran to completion.
func (d *Decomposition) Succeeded() bool { return d.decomposed && !d.failed }

// Err returns the sentinel recorded by the last failed Decompose, nil
// after success.
func (d *Decomposition) Err() error { return d.err }
