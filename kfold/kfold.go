package kfold

import "errors"

// ErrFoldCount indicates an unsatisfiable fold request: fewer than two
// folds, or more folds than there are items to split.
var ErrFoldCount = errors.New("kfold: fold count must be in [2, itemCount]")

// Fold is one train/test partition of the index range [0, n).
type Fold struct {
	// Train holds the indices outside the test block, ascending.
	Train []int

	// Test holds the fold's contiguous held-out indices, ascending.
	Test []int
}

// Split partitions the indices 0..n-1 into k folds.
//
// Layout: the first n mod k folds hold n/k+1 test indices, the remaining
// folds hold n/k, and the test blocks tile [0, n) in order. Deterministic:
// no shuffling, no configuration.
//
// Returns ErrFoldCount if k < 2 or k > n.
//
// Complexity: O(n·k) time, O(n·k) space (each fold carries its complement).
func Split(n, k int) ([]Fold, error) {
	if k < 2 || k > n {
		return nil, ErrFoldCount
	}

	folds := make([]Fold, k)
	size := n / k
	extra := n % k

	start := 0
	for f := 0; f < k; f++ {
		stop := start + size
		if f < extra {
			stop++
		}

		test := make([]int, 0, stop-start)
		train := make([]int, 0, n-(stop-start))
		for i := 0; i < n; i++ {
			if i >= start && i < stop {
				test = append(test, i)
			} else {
				train = append(train, i)
			}
		}
		folds[f] = Fold{Train: train, Test: test}
		start = stop
	}
	return folds, nil
}
