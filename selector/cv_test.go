package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hmmselect/selector"
	"github.com/katalvlaran/hmmselect/seqset"
)

// cvFixture: three single-frame sequences valued 1, 10, 100. With 3 folds
// the deterministic splits are trains {1,2},{0,2},{0,1} (sums 110, 101, 11)
// and tests {0},{1},{2} (sums 1, 10, 100); the full data sums to 111.
func cvFixture(t *testing.T) *seqset.Set {
	t.Helper()
	return oneFeatureSet(t, "BOOK", []float64{1}, []float64{10}, []float64{100})
}

// TestCV_FailedFoldExcludedFromMean verifies a fold whose fit fails is
// skipped — the candidate's mean is taken over surviving folds only. With
// a zero substituted for the failed fold, k=3 would win (10 vs 12); with
// proper exclusion k=2 wins (15 vs 12).
func TestCV_FailedFoldExcludedFromMean(t *testing.T) {
	set := cvFixture(t)

	f := newFakeFitter()
	f.scores[fitKey{2, 1}] = 10
	f.failFit[fitKey{2, 101}] = true // k=2, middle fold's train split
	f.scores[fitKey{2, 100}] = 20
	f.scores[fitKey{3, 1}] = 12
	f.scores[fitKey{3, 10}] = 12
	f.scores[fitKey{3, 100}] = 12

	sel, err := selector.New(selector.CV, set, nil, fakeConfig(f, 2, 3))
	require.NoError(t, err)
	m, err := sel.Select()
	require.NoError(t, err)
	assert.Equal(t, 2, selectedStates(t, m))
}

// TestCV_ReturnsModelRefitOnFullData verifies the returned model comes from
// a final fit on ALL sequences, not from any fold's train split.
func TestCV_ReturnsModelRefitOnFullData(t *testing.T) {
	set := cvFixture(t)

	f := newFakeFitter()
	f.scores[fitKey{2, 1}] = 10
	f.scores[fitKey{2, 10}] = 10
	f.scores[fitKey{2, 100}] = 10
	f.scores[fitKey{3, 1}] = 3
	f.scores[fitKey{3, 10}] = 3
	f.scores[fitKey{3, 100}] = 3

	sel, err := selector.New(selector.CV, set, nil, fakeConfig(f, 2, 3))
	require.NoError(t, err)
	m, err := sel.Select()
	require.NoError(t, err)

	fm, ok := m.(*fakeModel)
	require.True(t, ok)
	assert.Equal(t, 2, fm.states)
	assert.Equal(t, 3, fm.trainSeqs, "refit must see every sequence")
	assert.Equal(t, set.Frames(), fm.trainRows, "refit must see every frame")

	// The very last fit is the full-data refit.
	last := f.calls[len(f.calls)-1]
	assert.Equal(t, fitCall{states: 2, rows: 3, seqs: 3}, last)
}

// TestCV_RefitFailurePropagates: folds agreed on a winner, but the final
// full-data fit fails — that error must surface, not a fold model.
func TestCV_RefitFailurePropagates(t *testing.T) {
	set := cvFixture(t)

	f := newFakeFitter()
	f.scores[fitKey{2, 1}] = 10
	f.scores[fitKey{2, 10}] = 10
	f.scores[fitKey{2, 100}] = 10
	f.failFit[fitKey{2, 111}] = true // the full-data refit

	sel, err := selector.New(selector.CV, set, nil, fakeConfig(f, 2, 2))
	require.NoError(t, err)
	_, err = sel.Select()
	assert.ErrorIs(t, err, errFakeFit)
}

// TestCV_SingleSequenceFallsBack verifies the degenerate case: one sequence
// must not attempt a 3-fold split; each candidate is scored by fitting on
// the full data and scoring that same data.
func TestCV_SingleSequenceFallsBack(t *testing.T) {
	set := oneFeatureSet(t, "BOOK", []float64{1, 10}) // one sequence, sum 11

	f := newFakeFitter()
	f.scores[fitKey{2, 11}] = 5
	f.scores[fitKey{3, 11}] = 7

	sel, err := selector.New(selector.CV, set, nil, fakeConfig(f, 2, 3))
	require.NoError(t, err)
	m, err := sel.Select()
	require.NoError(t, err)
	assert.Equal(t, 3, selectedStates(t, m))

	for _, call := range f.calls {
		assert.Equal(t, 1, call.seqs, "every fit sees the single full sequence")
		assert.Equal(t, 2, call.rows)
	}
	// Scan fits for k=2 and k=3, plus the final refit.
	assert.Len(t, f.calls, 3)
}

// TestCV_TwoSequencesUseTwoFolds verifies the fold cap clamps to the
// sequence count (2 sequences ⇒ 2 folds, never 3).
func TestCV_TwoSequencesUseTwoFolds(t *testing.T) {
	set := oneFeatureSet(t, "BOOK", []float64{1}, []float64{10})

	f := newFakeFitter()
	// Folds: train {1} / test {0} and train {0} / test {1}.
	f.scores[fitKey{2, 1}] = 4
	f.scores[fitKey{2, 10}] = 6

	sel, err := selector.New(selector.CV, set, nil, fakeConfig(f, 2, 2))
	require.NoError(t, err)
	m, err := sel.Select()
	require.NoError(t, err)
	assert.Equal(t, 2, selectedStates(t, m))

	// Two fold fits (one frame each) plus the full refit (two frames).
	require.Len(t, f.calls, 3)
	assert.Equal(t, 1, f.calls[0].rows)
	assert.Equal(t, 1, f.calls[1].rows)
	assert.Equal(t, 2, f.calls[2].rows)
}

// TestCV_NoViableCandidate verifies that when every fold of every candidate
// fails, no refit happens and ErrNoViableCandidate propagates.
func TestCV_NoViableCandidate(t *testing.T) {
	set := cvFixture(t)
	f := newFakeFitter() // no scripted scores: every fold score fails

	sel, err := selector.New(selector.CV, set, nil, fakeConfig(f, 2, 3))
	require.NoError(t, err)
	_, err = sel.Select()
	assert.ErrorIs(t, err, selector.ErrNoViableCandidate)

	for _, call := range f.calls {
		assert.Less(t, call.seqs, 3, "no full-data refit may be attempted")
	}
}
