package kfold_test

import (
	"fmt"

	"github.com/katalvlaran/hmmselect/kfold"
)

// ExampleSplit shows the deterministic contiguous layout for 5 items in 3 folds.
func ExampleSplit() {
	folds, _ := kfold.Split(5, 3)
	for i, f := range folds {
		fmt.Printf("fold %d: train=%v test=%v\n", i, f.Train, f.Test)
	}

	// Output:
	// fold 0: train=[2 3 4] test=[0 1]
	// fold 1: train=[0 1 4] test=[2 3]
	// fold 2: train=[0 1 2 3] test=[4]
}
