package selector

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hmmselect/kfold"
)

// CVSelector chooses the candidate state count maximizing the mean
// held-out log-likelihood across deterministic K folds of the item's
// sequences (K = min(Folds, sequence count)), then refits the winner on
// the COMPLETE item data — the folds only pick k, they never produce the
// returned model.
//
// With fewer than two sequences K-fold splitting is meaningless; the
// selector falls back to single-fold behavior, scoring each candidate by
// fitting on the full data and scoring that same data. The fold count is
// therefore never requested larger than the number of sequences.
//
// Fold handling is pure: train and test splits are flattened into fresh
// observation views (seqset.Subset); the selector's own stored
// representation is never swapped or mutated.
type CVSelector struct {
	base
}

// Select scans [MinStates, MaxStates]. Per candidate, a fold whose fit or
// score fails is skipped — excluded from the mean, never counted as zero —
// and a candidate with no surviving fold is excluded from the comparison.
// Ties break toward the smaller state count.
func (s *CVSelector) Select() (Model, error) {
	if s.rangeEmpty() {
		return nil, ErrEmptyStateRange
	}

	folds, err := s.splitFolds()
	if err != nil {
		return nil, err
	}

	bestK := 0
	bestMean := 0.0
	found := false
	for k := s.cfg.MinStates; k <= s.cfg.MaxStates; k++ {
		scores := s.foldScores(k, folds)
		if len(scores) == 0 {
			s.logf("%s: CV k=%d has no scorable fold, excluded", s.set.Item(), k)
			continue
		}
		mean := floats.Sum(scores) / float64(len(scores))
		s.logf("%s: CV k=%d folds=%d mean=%.4f", s.set.Item(), k, len(scores), mean)

		if !found || mean > bestMean {
			bestK, bestMean, found = k, mean, true
		}
	}
	if !found {
		return nil, ErrNoViableCandidate
	}

	// The returned model is always refit on all available data.
	m, err := s.fitCandidate(bestK)
	if err != nil {
		return nil, fmt.Errorf("selector: refit of %q with %d states on full data: %w",
			s.set.Item(), bestK, err)
	}
	return m, nil
}

// splitFolds resolves the fold policy up front: clamp the configured fold
// count to the sequence count; below two folds return nil to signal the
// single-fold fallback. kfold.Split is only ever called with a satisfiable
// request.
func (s *CVSelector) splitFolds() ([]kfold.Fold, error) {
	n := s.set.Len()
	k := s.cfg.Folds
	if k > n {
		k = n
	}
	if k < 2 {
		s.logf("%s: %d sequence(s), falling back to single-fold scoring", s.set.Item(), n)
		return nil, nil
	}
	return kfold.Split(n, k)
}

// foldScores collects the held-out log-likelihoods for one candidate state
// count. folds == nil selects the single-fold fallback: fit on the full
// item data and score that same data.
func (s *CVSelector) foldScores(numStates int, folds []kfold.Fold) []float64 {
	if folds == nil {
		m, err := s.fitCandidate(numStates)
		if err != nil {
			return nil
		}
		v, err := m.Score(s.x, s.lengths)
		if err != nil {
			s.logf("%s: CV score failed with %d states: %v", s.set.Item(), numStates, err)
			return nil
		}
		return []float64{v}
	}

	var scores []float64
	for i, fold := range folds {
		trainX, trainLens, err := s.set.Subset(fold.Train)
		if err != nil {
			s.logf("%s: CV fold %d train split: %v", s.set.Item(), i, err)
			continue
		}
		m, err := s.fitOn(trainX, trainLens, numStates)
		if err != nil {
			continue
		}

		testX, testLens, err := s.set.Subset(fold.Test)
		if err != nil {
			s.logf("%s: CV fold %d test split: %v", s.set.Item(), i, err)
			continue
		}
		v, err := m.Score(testX, testLens)
		if err != nil {
			s.logf("%s: CV fold %d score failed with %d states: %v",
				s.set.Item(), i, numStates, err)
			continue
		}
		scores = append(scores, v)
	}
	return scores
}
