package hmm_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hmmselect/hmm"
)

func benchData(b *testing.B) (*mat.Dense, []int) {
	b.Helper()
	x, lengths := twoRegimeData(8, 40, 1)
	return x, lengths
}

func BenchmarkFit_TwoStates(b *testing.B) {
	x, lengths := benchData(b)
	cfg := hmm.Config{Seed: 14, MaxIter: 50}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hmm.Fit(x, lengths, 2, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFit_FiveStates(b *testing.B) {
	x, lengths := benchData(b)
	cfg := hmm.Config{Seed: 14, MaxIter: 50}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := hmm.Fit(x, lengths, 5, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScore(b *testing.B) {
	x, lengths := benchData(b)
	m, err := hmm.Fit(x, lengths, 3, hmm.Config{Seed: 14, MaxIter: 50})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Score(x, lengths); err != nil {
			b.Fatal(err)
		}
	}
}
