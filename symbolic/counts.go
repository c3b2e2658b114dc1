package symbolic

import (
	"github.com/katalvlaran/qrkit/matrix"
)

// StructuralCounts is the sparse QR structural analyzer. One Process call
// consumes a pattern and an elimination order and leaves the instance
// holding per-column nonzero predictions for R and V, the structural row
// pivoting, the elimination tree, and the row bookkeeping that produced
// them.
//
// All scratch is owned by the instance and rebuilt per call: results go
// stale the moment the sparsity pattern changes (numeric value changes
// alone never invalidate them). Not safe for concurrent use.
type StructuralCounts struct {
	m, n int // pattern dimensions
	m2   int // rows including fictitious ones, m2 ≥ m

	order    []int     // elimination order in effect
	rowLists *RowLists // per-row column chains
	leftmost []int     // first-touch column per row, -1 for empty rows
	parent   []int     // elimination tree of AᵀA, -1 at roots
	pinv     []int     // structural row permutation: row i → position pinv[i]

	nnzR, nnzV     []int // per-column predictions
	totalR, totalV int

	// Queue-of-rows linked lists, one queue per column: the V sweep.
	head, tail, nque []int
	rnext            []int // next row in the same queue

	// Visited marker for the R walk; w[k] == current column ⇒ seen.
	w []int

	ancestor []int // path-compression scratch for the elimination tree
	prev     []int // last column seen per row during tree construction

	processed bool
}

// NewStructuralCounts returns an analyzer with no storage; buffers are
// allocated by the first Process and reused afterwards.
func NewStructuralCounts() *StructuralCounts {
	return &StructuralCounts{}
}

// init sizes all working arrays for an m×n pattern.
func (s *StructuralCounts) init(a *matrix.CSC) {
	s.m, s.n = a.NumRows, a.NumCols
	s.m2 = s.m
	s.processed = false

	s.parent = growInts(s.parent, s.n)
	s.pinv = growInts(s.pinv, s.m)
	s.nnzR = growInts(s.nnzR, s.n)
	s.nnzV = growInts(s.nnzV, s.n)
	s.head = growInts(s.head, s.n)
	s.tail = growInts(s.tail, s.n)
	s.nque = growInts(s.nque, s.n)
	s.rnext = growInts(s.rnext, s.m)
	s.w = growInts(s.w, s.n)
	s.ancestor = growInts(s.ancestor, s.n)
	s.prev = growInts(s.prev, s.m)

	for k := 0; k < s.n; k++ {
		s.w[k] = noColumn
	}
	s.totalR, s.totalV = 0, 0
}

// growInts returns buf resized to n, reallocating only when needed.
func growInts(buf []int, n int) []int {
	if cap(buf) < n {
		return make([]int, n)
	}

	return buf[:n]
}

// Process runs the full symbolic pre-pass on a's pattern under the given
// column elimination order (nil means natural order):
//
//  1. build the row element linked lists and take each row's first
//     column as its leftmost index;
//  2. build the elimination tree of AᵀA;
//  3. sweep the row queues through the tree to count V's columns and
//     assign structural pivot rows;
//  4. walk tree paths per column to count R's columns.
//
// Only the pattern is read — never a value. Re-run when the pattern
// changes; numeric changes alone do not require it.
// Errors: ErrNilMatrix, ErrBadColumnOrder.
// Complexity: O(nnz·α) for the tree, O(n + nnz) for the V sweep, output
// sensitive (bounded by nnz(R)) for the R walk.
func (s *StructuralCounts) Process(a *matrix.CSC, order []int) error {
	if a == nil {
		return ErrNilMatrix
	}
	ord, err := normalizeOrder(a.NumCols, order)
	if err != nil {
		return err
	}

	s.init(a)
	s.order = ord

	// 1) Row chains and leftmost indices.
	if s.rowLists, err = CreateRowElementLinkedLists(a, ord); err != nil {
		return err
	}
	s.leftmost = growInts(s.leftmost, s.m)
	for i := 0; i < s.m; i++ {
		s.leftmost[i] = s.rowLists.FirstColumn(i)
	}

	// 2) Elimination tree of AᵀA.
	s.eliminationTree(a)

	// 3) V counts, structural row pivots, fictitious rows.
	s.countNonZeroUsingLinkedList()

	// 4) R counts via marked tree-path walks.
	s.countNonZeroInR(a)

	s.processed = true

	return nil
}

// eliminationTree computes the elimination tree of AᵀA without forming
// AᵀA: rows chain consecutive columns together (prev), and ancestor
// path-compression keeps the upward walks near-constant.
func (s *StructuralCounts) eliminationTree(a *matrix.CSC) {
	for i := 0; i < s.m; i++ {
		s.prev[i] = noColumn
	}

	var k, p, i, next, col int
	for k = 0; k < s.n; k++ {
		s.parent[k] = noColumn
		s.ancestor[k] = noColumn
		col = s.order[k]
		for p = a.ColPtr[col]; p < a.ColPtr[col+1]; p++ {
			// The previous column touching this row links to k.
			i = s.prev[a.RowIdx[p]]
			for ; i != noColumn && i < k; i = next {
				next = s.ancestor[i]
				s.ancestor[i] = k // compress the path for later walks
				if next == noColumn {
					s.parent[i] = k
				}
			}
			s.prev[a.RowIdx[p]] = k
		}
	}
}

// countNonZeroUsingLinkedList counts the structural nonzeros of every
// column of V by simulating the elimination over row queues:
//
//   - every non-empty row starts queued at its leftmost column;
//   - at step k the queue at column k is the pattern of V's column k; its
//     head row becomes the column's structural pivot (a fictitious row is
//     invented when the queue is empty, keeping the diagonal structurally
//     nonzero);
//   - the remaining queued rows are newly touched by column k+1's view of
//     the world through the tree: they migrate, as one linked chain, to
//     the queue of parent[k].
//
// Populates nnzV, totalV, pinv and m2.
func (s *StructuralCounts) countNonZeroUsingLinkedList() {
	// Empty queues everywhere.
	var k int
	for k = 0; k < s.n; k++ {
		s.head[k] = noColumn
		s.tail[k] = noColumn
		s.nque[k] = 0
	}

	// Queue rows at their leftmost columns. Reverse row scan + prepend
	// keeps each queue ascending by row index, which makes the pivot
	// assignment deterministic.
	var i int
	for i = s.m - 1; i >= 0; i-- {
		s.pinv[i] = noColumn // not yet ordered
		k = s.leftmost[i]
		if k == noColumn {
			continue // empty row never participates
		}
		if s.nque[k] == 0 {
			s.tail[k] = i // first row in queue k
		}
		s.nque[k]++
		s.rnext[i] = s.head[k]
		s.head[k] = i
	}

	s.totalV = 0
	s.m2 = s.m
	var pa int
	for k = 0; k < s.n; k++ {
		i = s.head[k] // candidate pivot row for column k
		s.totalV++    // V(k,k) is always structurally nonzero
		s.nnzV[k] = 1
		if i < 0 {
			// Structurally empty column: invent a fictitious row so the
			// diagonal stays structurally nonzero.
			s.m2++
		} else {
			s.pinv[i] = k // associate row i with V's column k
		}
		s.nque[k]--
		if s.nque[k] <= 0 {
			continue // V(k+1:m, k) is structurally empty
		}
		// The rest of the queue is V's subdiagonal pattern.
		s.nnzV[k] += s.nque[k]
		s.totalV += s.nque[k]

		// Migrate the remaining rows, as one chain, to the parent column.
		if pa = s.parent[k]; pa != noColumn {
			if s.nque[pa] == 0 {
				s.tail[pa] = s.tail[k]
			}
			s.rnext[s.tail[k]] = s.head[pa]
			s.head[pa] = s.rnext[i] // skip the pivot row
			s.nque[pa] += s.nque[k]
		}
	}

	// Rows never chosen as pivots take the trailing positions.
	pos := s.n
	for i = 0; i < s.m; i++ {
		if s.pinv[i] < 0 {
			s.pinv[i] = pos
			pos++
		}
	}
}

// countNonZeroInR counts the structural nonzeros of every column of R.
// For column k, the nonzero rows of R(:,k) above the diagonal are exactly
// the elimination-tree nodes on the upward paths from leftmost(i), for
// every row i in the column's pattern, stopped at k. The visited marker
// stores k itself, so no clearing between columns — and the walk stays
// correct if columns are ever re-driven out of order.
func (s *StructuralCounts) countNonZeroInR(a *matrix.CSC) {
	s.totalR = 0
	var k, p, t, count, col int
	for k = 0; k < s.n; k++ {
		s.w[k] = k // mark the diagonal node itself
		count = 0
		col = s.order[k]
		for p = a.ColPtr[col]; p < a.ColPtr[col+1]; p++ {
			// Walk upward from the row's first-touch column until the
			// path hits k or a node another row already claimed.
			for t = s.leftmost[a.RowIdx[p]]; s.w[t] != k; t = s.parent[t] {
				s.w[t] = k
				count++
			}
		}
		s.nnzR[k] = count + 1 // paths above the diagonal, plus R(k,k)
		s.totalR += s.nnzR[k]
	}
}

// CountNonZeroInR returns the predicted nonzero count of column j of R
// (diagonal included). Valid after a successful Process; zero before.
func (s *StructuralCounts) CountNonZeroInR(j int) int {
	if !s.processed {
		return 0
	}

	return s.nnzR[j]
}

// CountNonZeroInV returns the predicted nonzero count of column j of the
// Householder vector storage V (structural diagonal included). Valid
// after a successful Process; zero before.
//
// Note that CountNonZeroInV(j) ≥ CountNonZeroInR(j) does not hold in
// general: V accumulates the rows queued at or below the pivot, R the
// fill above it — structurally distinct sets.
func (s *StructuralCounts) CountNonZeroInV(j int) int {
	if !s.processed {
		return 0
	}

	return s.nnzV[j]
}

// TotalR returns the predicted total nonzero count of R — the exact
// allocation size for a numeric factorizer.
func (s *StructuralCounts) TotalR() int { return s.totalR }

// TotalV returns the predicted total nonzero count of V.
func (s *StructuralCounts) TotalV() int { return s.totalV }

// RowPivot returns the structural row permutation: original row i lands
// at position RowPivot()[i] of the permuted matrix, and every column's
// structural pivot sits on its diagonal. The slice is reused by the next
// Process; do not retain it.
func (s *StructuralCounts) RowPivot() []int { return s.pinv }

// Parent returns the elimination tree of AᵀA under the processed order
// (-1 marks roots). Reused by the next Process; do not retain.
func (s *StructuralCounts) Parent() []int { return s.parent }

// Leftmost returns each row's first-touch column position, -1 for empty
// rows. Reused by the next Process; do not retain.
func (s *StructuralCounts) Leftmost() []int { return s.leftmost }

// RowLists returns the row element linked lists built by the last
// Process. Reused by the next Process; do not retain.
func (s *StructuralCounts) RowLists() *RowLists { return s.rowLists }

// FictitiousRows returns how many fictitious rows the structural pivoting
// had to invent — zero exactly when the pattern has full structural rank.
func (s *StructuralCounts) FictitiousRows() int { return s.m2 - s.m }
