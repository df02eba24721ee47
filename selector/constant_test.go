package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hmmselect/selector"
)

// TestConstant_FitsExactlyOnce verifies the Constant strategy requests one
// single candidate — the configured constant — regardless of the range.
func TestConstant_FitsExactlyOnce(t *testing.T) {
	set := oneFeatureSet(t, "BOOK", []float64{1, 2}, []float64{3})
	f := newFakeFitter()
	cfg := fakeConfig(f, 2, 10)
	cfg.ConstantStates = 4

	sel, err := selector.New(selector.Constant, set, nil, cfg)
	require.NoError(t, err)

	m, err := sel.Select()
	require.NoError(t, err)
	assert.Equal(t, 4, selectedStates(t, m))

	require.Len(t, f.calls, 1, "exactly one fit, no scan")
	assert.Equal(t, fitCall{states: 4, rows: 3, seqs: 2}, f.calls[0], "fit on the full item data")
}

// TestConstant_FitFailurePropagates verifies there is no retry with a
// different count: the single fit failure surfaces to the caller.
func TestConstant_FitFailurePropagates(t *testing.T) {
	set := oneFeatureSet(t, "BOOK", []float64{1, 2})
	f := newFakeFitter()
	f.failFitStates[3] = true
	cfg := fakeConfig(f, 2, 10)
	cfg.ConstantStates = 3

	sel, err := selector.New(selector.Constant, set, nil, cfg)
	require.NoError(t, err)

	_, err = sel.Select()
	assert.ErrorIs(t, err, errFakeFit, "the fit failure must propagate wrapped")
	assert.Len(t, f.calls, 1, "no retry")
}
