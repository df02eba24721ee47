package selector

import "math"

// BICSelector chooses the candidate state count minimizing the Bayesian
// Information Criterion over the item's own data:
//
//	BIC(k) = -2·logL + p(k)·log(N)
//	p(k)   = k² + 2·F·k − 1
//
// where F is the feature dimensionality, N the total frame count, and p(k)
// counts the free parameters of a diagonal-covariance Gaussian HMM
// (transition probabilities, means and variances). Lower is better: the
// penalty term trades likelihood against model complexity.
type BICSelector struct {
	base
}

// Select scans [MinStates, MaxStates]; a candidate that fails to fit or to
// score is excluded from the comparison entirely. Ties break toward the
// smaller state count (first best wins).
func (s *BICSelector) Select() (Model, error) {
	if s.rangeEmpty() {
		return nil, ErrEmptyStateRange
	}

	features := float64(s.set.Features())
	logN := math.Log(float64(s.set.Frames()))

	var best Model
	bestBIC := 0.0
	found := false
	for k := s.cfg.MinStates; k <= s.cfg.MaxStates; k++ {
		m, err := s.fitCandidate(k)
		if err != nil {
			continue
		}
		logLik, err := m.Score(s.x, s.lengths)
		if err != nil {
			s.logf("%s: BIC score failed with %d states: %v", s.set.Item(), k, err)
			continue
		}

		p := float64(k*k) + 2*features*float64(k) - 1
		bic := -2*logLik + p*logN
		s.logf("%s: BIC k=%d logL=%.4f p=%.0f bic=%.4f", s.set.Item(), k, logLik, p, bic)

		if !found || bic < bestBIC {
			best, bestBIC, found = m, bic, true
		}
	}
	if !found {
		return nil, ErrNoViableCandidate
	}
	return best, nil
}
