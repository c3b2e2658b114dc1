package qr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qrkit/householder"
	"github.com/katalvlaran/qrkit/matrix"
	"github.com/katalvlaran/qrkit/triangular"
)

// Solver solves A·x = b through QR decomposition: it multiplies b by Qᵀ
// (reflector by reflector) and back-substitutes against R.
//
//	Q·R·x = b
//	R·x   = Qᵀ·b
//
// Square systems are solved exactly; overdetermined systems (rows > cols)
// yield the least-squares solution. A and B are never mutated — every
// working copy is internal, sized by SetA and reused across solves.
//
// Not reentrant: one in-flight call per instance. Use independent
// instances across goroutines.
type Solver struct {
	decomposer *Decomposition

	r *matrix.Dense // compact cols×cols copy of R, rebuilt by every SetA
	a []float64     // scratch: one right-hand-side column

	gammas []float64   // borrowed from decomposer after SetA
	qrCols [][]float64 // borrowed from decomposer after SetA

	numRows, numCols int
	maxRows, maxCols int

	ready bool  // last SetA succeeded
	err   error // sentinel from the last failed SetA
}

// NewSolver creates a QR-based linear solver. WithMaxSize preallocates
// scratch so SetA/Solve cycles within the bound never allocate.
func NewSolver(opts ...Option) *Solver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Solver{decomposer: NewDecomposition()}
	if cfg.MaxRows > 0 {
		s.setMaxSize(cfg.MaxRows, cfg.MaxCols)
	}

	return s
}

// setMaxSize grows the scratch buffers to accommodate rows×cols systems.
func (s *Solver) setMaxSize(rows, cols int) {
	s.maxRows, s.maxCols = rows, cols
	if cap(s.a) < rows {
		s.a = make([]float64, rows)
	}
	if s.r == nil {
		s.r, _ = matrix.NewDense(cols, cols)
	} else {
		_ = s.r.Reshape(cols, cols)
	}
}

// SetA validates and factorizes A, preparing the solver for Solve calls.
//
// Stage 1 (Validate): reject nil input and wide systems (ErrInvalidShape —
// more variables than equations).
// Stage 2 (Prepare): resize internal scratch to A's dimensions.
// Stage 3 (Factorize): run the Householder decomposition; on structural
// failure the solver stays not-ready and Err reports the cause.
// Stage 4 (Extract): borrow gammas and the column-major QR storage, and
// copy out compact R for the triangular solves.
//
// Returns false on ErrInvalidShape or ErrStructuralFailure; A is never
// mutated either way.
// Complexity: O(m·n²).
func (s *Solver) SetA(a *matrix.Dense) bool {
	// Any SetA resets readiness; partial state never leaks.
	s.ready = false
	s.err = nil

	// 1) Validate
	if a == nil {
		s.err = ErrNilMatrix

		return false
	}
	if a.Rows() < a.Cols() {
		s.err = fmt.Errorf("SetA: %dx%d system is wide: %w", a.Rows(), a.Cols(), ErrInvalidShape)

		return false
	}

	// 2) Resize scratch
	if a.Rows() > s.maxRows || a.Cols() > s.maxCols {
		s.setMaxSize(a.Rows(), a.Cols())
	}
	s.numRows, s.numCols = a.Rows(), a.Cols()
	s.a = s.a[:s.numRows]

	// 3) Factorize
	if !s.decomposer.Decompose(a) {
		s.err = s.decomposer.Err()

		return false
	}

	// 4) Extract factorization views
	s.gammas = s.decomposer.Gammas()
	s.qrCols = s.decomposer.QR()
	if err := s.decomposer.R(s.r, true); err != nil {
		s.err = err

		return false
	}
	s.ready = true

	return true
}

// Quality returns a conditioning indicator derived from R's diagonal: the
// absolute product of the diagonal entries, each normalized by the largest
// magnitude among them. 1 is perfectly conditioned, 0 is exactly rank
// deficient; small values warn of near-deficiency. Not an error signal by
// itself. Returns 0 when the solver is not ready.
// Complexity: O(n).
func (s *Solver) Quality() float64 {
	if !s.ready {
		return 0
	}

	data := s.r.Data()
	n := s.numCols
	// Largest diagonal magnitude
	max := 0.0
	var v float64
	for i := 0; i < n; i++ {
		v = math.Abs(data[i*n+i])
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return 0
	}
	// Normalized diagonal product
	quality := 1.0
	for i := 0; i < n; i++ {
		quality *= data[i*n+i] / max
	}

	return math.Abs(quality)
}

// Solve solves A·X = B for every column of B independently, writing the
// solutions into the corresponding columns of X. B is not modified.
//
// Shape contract (ErrInvalidShape otherwise): X.Rows() == A.Cols(),
// B.Rows() == A.Rows(), B.Cols() == X.Cols().
//
// Per column: the column is copied into scratch, swept with reflectors
// 0..n-1 to form Qᵀb — each sweep temporarily substitutes the implicit 1
// at the stored diagonal slot of v_n and restores the original value
// afterwards — and then back-substituted against R. For overdetermined
// systems only the leading n entries of Qᵗb are consumed, which is what
// makes the result the least-squares solution.
//
// Errors: ErrNotReady without a successful SetA; triangular.ErrSingular
// when R has an exactly zero diagonal (rank-deficient system). After an
// error X's contents are unspecified: columns solved before the failing
// one have already been written.
// Complexity: O(m·n) per right-hand-side column.
func (s *Solver) Solve(b, x *matrix.Dense) error {
	if !s.ready {
		return ErrNotReady
	}
	// Dimension contract
	if b == nil || x == nil {
		return ErrNilMatrix
	}
	if x.Rows() != s.numCols {
		return fmt.Errorf("Solve: X rows = %d, want %d: %w", x.Rows(), s.numCols, ErrInvalidShape)
	}
	if b.Rows() != s.numRows || b.Cols() != x.Cols() {
		return fmt.Errorf("Solve: B is %dx%d, want %dx%d: %w", b.Rows(), b.Cols(), s.numRows, x.Cols(), ErrInvalidShape)
	}

	bData := b.Data()
	xData := x.Data()
	bNumCols := b.Cols()
	xNumCols := x.Cols()

	// Solve each right-hand-side column one by one.
	for colB := 0; colB < bNumCols; colB++ {
		// Copy this column of B into the scratch vector.
		for i := 0; i < s.numRows; i++ {
			s.a[i] = bData[i*bNumCols+colB]
		}

		// a = Qᵀb = Q_{n-1}·…·Q_1·Q_0·b, one reflector at a time:
		// Q_n·a = (I − gamma·u·uᵀ)·a = a − u·(gamma·uᵀ·a).
		for n := 0; n < s.numCols; n++ {
			u := s.qrCols[n]

			// The diagonal slot of u stores R[n][n]; reinstate the
			// implicit 1 for the update, then restore; u is back to its
			// stored form before the next iteration reads it.
			vv := u[n]
			u[n] = 1
			householder.ApplyReflector(s.a, u, s.gammas[n], n, s.numRows)
			u[n] = vv
		}

		// Solve R·x = Qᵀb by back substitution.
		if err := triangular.SolveUpper(s.r.Data(), s.a, s.numCols); err != nil {
			return fmt.Errorf("Solve: column %d: %w", colB, err)
		}

		// Save the result into X's column.
		for i := 0; i < s.numCols; i++ {
			xData[i*xNumCols+colB] = s.a[i]
		}
	}

	return nil
}

// ModifiesA reports whether SetA mutates its argument. It never does.
func (s *Solver) ModifiesA() bool { return false }

// ModifiesB reports whether Solve mutates B. It never does.
func (s *Solver) ModifiesB() bool { return false }

// Ready reports whether the last SetA succeeded.
func (s *Solver) Ready() bool { return s.ready }

// Err returns the sentinel recorded by the last failed SetA, nil after
// success.
func (s *Solver) Err() error { return s.err }

// Decomposition exposes the underlying factorization for introspection.
// Its buffers are reused by the next SetA; do not retain them.
func (s *Solver) Decomposition() *Decomposition { return s.decomposer }
