// Package qr sentinel errors and solver configuration.

package qr

import "errors"

// Sentinel errors returned by the qr package.
var (
	// ErrNilMatrix indicates that a nil *matrix.Dense was passed in.
	ErrNilMatrix = errors.New("qr: matrix is nil")

	// ErrInvalidShape indicates a wide system (more columns than rows) or a
	// dimension mismatch among A, B and X. Wide systems — more unknowns
	// than equations — are not solvable by the QR path.
	ErrInvalidShape = errors.New("qr: invalid shape")

	// ErrStructuralFailure indicates that reflector construction was
	// impossible (non-finite values in A). The solver is not ready until
	// the next successful SetA.
	ErrStructuralFailure = errors.New("qr: structural failure during decomposition")

	// ErrNotReady indicates that Solve or Quality was called before a
	// successful SetA.
	ErrNotReady = errors.New("qr: solver is not ready, SetA has not succeeded")
)

// Options configures a Solver.
//
// MaxRows/MaxCols — expected upper bound on system dimensions. When set,
// all scratch buffers are allocated once up front, and later SetA calls
// within the bound never allocate. Zero means grow on demand.
type Options struct {
	MaxRows int // preallocation bound on rows (0 = grow on demand)
	MaxCols int // preallocation bound on columns (0 = grow on demand)
}

// Option is a functional option for configuring a Solver.
type Option func(*Options)

// WithMaxSize preallocates the solver's scratch storage for systems up to
// rows×cols, so repeated SetA/Solve cycles within the bound are
// allocation-free. Non-positive values are ignored.
func WithMaxSize(rows, cols int) Option {
	return func(o *Options) {
		if rows > 0 && cols > 0 {
			o.MaxRows = rows
			o.MaxCols = cols
		}
	}
}

// DefaultOptions returns the zero configuration: grow-on-demand scratch.
func DefaultOptions() Options {
	return Options{}
}
