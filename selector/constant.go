package selector

import "fmt"

// ConstantSelector always fits and returns the model for the configured
// ConstantStates count — a baseline that never looks at the data to choose.
type ConstantSelector struct {
	base
}

// Select fits exactly once. A fit failure propagates wrapped; there is no
// retry with a different count and the candidate range is ignored.
func (s *ConstantSelector) Select() (Model, error) {
	m, err := s.fitCandidate(s.cfg.ConstantStates)
	if err != nil {
		return nil, fmt.Errorf("selector: constant fit of %q with %d states: %w",
			s.set.Item(), s.cfg.ConstantStates, err)
	}
	return m, nil
}
