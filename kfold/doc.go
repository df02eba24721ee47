// Package kfold partitions sequence indices into deterministic train/test
// folds for cross-validation.
//
// The split is contiguous and shuffle-free: for n items and k folds, the
// test blocks are consecutive index ranges, the first n mod k folds take
// ⌈n/k⌉ test indices and the rest take ⌊n/k⌋, and every index appears as a
// test index exactly once across the folds. Train indices are the ascending
// complement of the fold's test block.
//
// Same (n, k) ⇒ identical folds, always — there is no randomness to seed.
//
// Degenerate requests (k < 2, or more folds than items) are rejected with
// ErrFoldCount so callers resolve them explicitly before splitting, rather
// than discovering an unsatisfiable partition mid-run.
package kfold
