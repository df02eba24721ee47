package selector

// DICSelector chooses the candidate state count maximizing the
// Discriminative Information Criterion:
//
//	DIC(k) = logL(own item) − mean( logL(rival item) over all rivals )
//
// with every likelihood computed under the model fitted on the own item's
// data. Higher is better: a good model explains its own item and nothing
// else.
//
// The failure policy is deliberately asymmetric: a rival whose scoring
// fails is dropped from the mean only, while a failed own-item score
// excludes the candidate entirely. A candidate with zero scorable rivals
// has an undefined mean and is likewise excluded.
type DICSelector struct {
	base
	rivals []rivalSet
}

// Select scans [MinStates, MaxStates] and returns the model with the
// maximal DIC, or ErrNoViableCandidate if every candidate was excluded.
// Ties break toward the smaller state count.
func (s *DICSelector) Select() (Model, error) {
	if s.rangeEmpty() {
		return nil, ErrEmptyStateRange
	}

	var best Model
	bestDIC := 0.0
	found := false
	for k := s.cfg.MinStates; k <= s.cfg.MaxStates; k++ {
		m, err := s.fitCandidate(k)
		if err != nil {
			continue
		}

		own, err := m.Score(s.x, s.lengths)
		if err != nil {
			s.logf("%s: DIC own score failed with %d states: %v", s.set.Item(), k, err)
			continue
		}

		rivalSum := 0.0
		rivalCount := 0
		for _, r := range s.rivals {
			v, err := m.Score(r.x, r.lengths)
			if err != nil {
				s.logf("%s: DIC rival %q score failed with %d states: %v",
					s.set.Item(), r.item, k, err)
				continue
			}
			rivalSum += v
			rivalCount++
		}
		if rivalCount == 0 {
			s.logf("%s: DIC k=%d has no scorable rival, excluded", s.set.Item(), k)
			continue
		}

		dic := own - rivalSum/float64(rivalCount)
		s.logf("%s: DIC k=%d own=%.4f rivals=%d dic=%.4f", s.set.Item(), k, own, rivalCount, dic)

		if !found || dic > bestDIC {
			best, bestDIC, found = m, dic, true
		}
	}
	if !found {
		return nil, ErrNoViableCandidate
	}
	return best, nil
}
