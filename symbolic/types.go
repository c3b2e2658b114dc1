// Package symbolic sentinel errors and the RowLists structure.

package symbolic

import (
	"errors"

	"github.com/katalvlaran/qrkit/matrix"
)

// Sentinel errors returned by the symbolic package.
var (
	// ErrNilMatrix indicates that a nil *matrix.CSC was passed in.
	ErrNilMatrix = errors.New("symbolic: sparse matrix is nil")

	// ErrBadColumnOrder indicates that the supplied elimination order is
	// not a permutation of the column indices.
	ErrBadColumnOrder = errors.New("symbolic: column order is not a permutation")
)

// noColumn marks "no column" in leftmost/parent/head arrays.
const noColumn = -1

// RowLists holds, for every row of a sparse matrix, the singly linked
// chain of column positions (under the elimination order) that contain a
// nonzero in that row, ordered ascending. Nodes are the stored entries of
// the source matrix, addressed by their entry index, so the whole
// structure is three flat int views and one O(nnz) build.
//
// Rebuilt, never mutated incrementally: construct through
// CreateRowElementLinkedLists each time the pattern changes.
type RowLists struct {
	head []int // head[i]: first node of row i's chain, -1 when the row is empty
	next []int // next[p]: following node of node p's chain, -1 at the tail
	col  []int // col[p]: column position (order-relative) of node p
}

// NumRows returns the number of rows covered by the lists.
func (l *RowLists) NumRows() int { return len(l.head) }

// Head returns the first node of row i's chain, or -1 for an empty row.
func (l *RowLists) Head(i int) int { return l.head[i] }

// Next returns the node following p in its chain, or -1 at the tail.
func (l *RowLists) Next(p int) int { return l.next[p] }

// Col returns the column position stored at node p.
func (l *RowLists) Col(p int) int { return l.col[p] }

// FirstColumn returns the smallest column position touching row i — the
// head of the chain — or -1 for an empty row.
func (l *RowLists) FirstColumn(i int) int {
	p := l.head[i]
	if p == noColumn {
		return noColumn
	}

	return l.col[p]
}

// Columns materializes row i's chain as a slice, ascending. Convenience
// for consumers and tests; the sweep itself walks nodes directly.
// Complexity: O(chain length).
func (l *RowLists) Columns(i int) []int {
	var cols []int
	for p := l.head[i]; p != noColumn; p = l.next[p] {
		cols = append(cols, l.col[p])
	}

	return cols
}

// normalizeOrder validates order as a permutation of 0..n-1 and returns
// it, substituting the natural order for nil.
func normalizeOrder(n int, order []int) ([]int, error) {
	if order == nil {
		natural := make([]int, n)
		for i := range natural {
			natural[i] = i
		}

		return natural, nil
	}
	if len(order) != n {
		return nil, ErrBadColumnOrder
	}
	seen := make([]bool, n)
	for _, c := range order {
		if c < 0 || c >= n || seen[c] {
			return nil, ErrBadColumnOrder
		}
		seen[c] = true
	}

	return order, nil
}

// CreateRowElementLinkedLists builds the per-row column chains of a under
// the given elimination order (nil means natural order). Column positions
// stored in the chains are order-relative: position k refers to the k-th
// eliminated column, i.e. original column order[k].
//
// Built by scanning columns in reverse elimination order and prepending,
// so every chain comes out ascending.
// Errors: ErrNilMatrix, ErrBadColumnOrder.
// Complexity: O(n + nnz).
func CreateRowElementLinkedLists(a *matrix.CSC, order []int) (*RowLists, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	ord, err := normalizeOrder(a.NumCols, order)
	if err != nil {
		return nil, err
	}

	lists := &RowLists{
		head: make([]int, a.NumRows),
		next: make([]int, a.NumNonZero()),
		col:  make([]int, a.NumNonZero()),
	}
	for i := range lists.head {
		lists.head[i] = noColumn
	}

	// Reverse scan + prepend ⇒ ascending chains.
	var k, p, row int
	for k = a.NumCols - 1; k >= 0; k-- {
		for p = a.ColPtr[ord[k]]; p < a.ColPtr[ord[k]+1]; p++ {
			row = a.RowIdx[p]
			lists.next[p] = lists.head[row]
			lists.col[p] = k
			lists.head[row] = p
		}
	}

	return lists, nil
}

// FindMinElementIndexInRows returns, per row, the smallest column position
// (under the elimination order, nil meaning natural) containing a nonzero,
// or -1 for an empty row. This is the column whose elimination step first
// disturbs the row — the analogue of an elimination-tree entry point.
//
// Columns are scanned in reverse order so the smallest position is the
// last one written.
// Errors: ErrNilMatrix, ErrBadColumnOrder.
// Complexity: O(m + n + nnz).
func FindMinElementIndexInRows(a *matrix.CSC, order []int) ([]int, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	ord, err := normalizeOrder(a.NumCols, order)
	if err != nil {
		return nil, err
	}

	leftmost := make([]int, a.NumRows)
	for i := range leftmost {
		leftmost[i] = noColumn
	}
	var k, p int
	for k = a.NumCols - 1; k >= 0; k-- {
		for p = a.ColPtr[ord[k]]; p < a.ColPtr[ord[k]+1]; p++ {
			leftmost[a.RowIdx[p]] = k
		}
	}

	return leftmost, nil
}
