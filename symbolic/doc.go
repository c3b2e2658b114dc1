// Package symbolic predicts, column by column, the nonzero structure that
// sparse Householder QR factorization will produce — before any
// floating-point work happens.
//
// Overview:
//
// Given a sparse matrix pattern in compressed-sparse-column form and a
// column elimination order (a fill-reducing permutation computed
// elsewhere), StructuralCounts.Process computes:
//
//   - CountNonZeroInV(j): the number of structural nonzeros in column j of
//     the Householder vector storage V;
//   - CountNonZeroInR(j): the number of structural nonzeros in column j of
//     the triangular factor R (diagonal included);
//   - TotalV / TotalR: their sums — the exact allocation sizes a numeric
//     sparse QR factorizer needs;
//   - RowPivot: a structural row permutation that makes every diagonal
//     entry structurally nonzero (fictitious rows are appended when the
//     pattern is structurally rank deficient);
//   - Parent: the elimination tree of AᵀA, and Leftmost: each row's
//     first-touch column.
//
// The analysis is a pure symbolic pass: Values of the input matrix are
// never read, so its output stays valid across any number of numeric
// factorizations of matrices sharing the pattern, and must be re-run only
// when the pattern itself changes.
//
// Machinery (and where it comes from):
//
//   - Row element linked lists: for each row, the ordered chain of columns
//     containing a nonzero in that row — "which columns touch this row"
//     without rescanning the whole structure. Built once per Process.
//   - Leftmost indices: the smallest (under the elimination order) column
//     touching each row — the first elimination step that can disturb it.
//   - The V counts come from a queue simulation: every row starts queued
//     at its leftmost column; at step k the queue at column k is exactly
//     the pattern of V's column k, its head row becomes the structural
//     pivot, and the remainder migrates en masse to the parent column in
//     the elimination tree.
//   - The R counts walk, for every nonzero row of the target column, the
//     elimination-tree path upward from the row's leftmost column,
//     deduplicating through a visited marker that stores the current
//     column index — reset per column, not globally, so columns may be
//     re-driven in any order without a clearing pass.
//
// Instances own all their scratch; Process rebuilds everything each call
// and is not safe for concurrent use on one instance.
//
// Complexity: building lists, leftmost indices and the elimination tree is
// O(nnz·α) time; the V queue sweep is O(n + nnz); the R walk is bounded by
// the size of the predicted R.
package symbolic
