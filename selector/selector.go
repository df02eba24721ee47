package selector

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hmmselect/hmm"
	"github.com/katalvlaran/hmmselect/seqset"
)

// Selector is the selection contract: exactly one fitted model for the
// item, or an error when no candidate state count produced a usable model.
type Selector interface {
	Select() (Model, error)
}

// New constructs the selector for one vocabulary item.
//
// set is the item's own data; rivals holds every other item's data and is
// consulted only by the DIC strategy (rivals whose identifier matches the
// item are ignored; nil is fine for the other strategies). cfg follows
// DefaultConfig conventions; Config{} is rejected with ErrBadConfig since
// a zero candidate range selects nothing.
func New(strategy Strategy, set *seqset.Set, rivals []*seqset.Set, cfg Config) (Selector, error) {
	b, err := newBase(set, cfg)
	if err != nil {
		return nil, err
	}

	switch strategy {
	case Constant:
		return &ConstantSelector{base: b}, nil
	case BIC:
		return &BICSelector{base: b}, nil
	case DIC:
		rs := flattenRivals(set.Item(), rivals)
		if len(rs) == 0 {
			return nil, ErrNoRivals
		}
		return &DICSelector{base: b, rivals: rs}, nil
	case CV:
		return &CVSelector{base: b}, nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// base holds the read-only per-item state shared by every strategy: the
// item's data in both representations, the candidate range and the fitting
// capability. It carries no mutable selection state.
type base struct {
	set     *seqset.Set
	x       *mat.Dense // full-item flattened observations
	lengths []int
	cfg     Config
	fitter  Fitter
}

func newBase(set *seqset.Set, cfg Config) (base, error) {
	if set == nil {
		return base{}, ErrNilSet
	}
	if cfg.MinStates < 1 || cfg.ConstantStates < 1 || cfg.Folds < 1 {
		return base{}, ErrBadConfig
	}

	fitter := cfg.Fitter
	if fitter == nil {
		fitter = gaussianFitter{maxIter: cfg.MaxIter}
	}

	x, lengths := set.Flatten()
	return base{set: set, x: x, lengths: lengths, cfg: cfg, fitter: fitter}, nil
}

// fitCandidate fits the given state count on the FULL item data with the
// configured seed. A FitFailure is logged and returned for the caller to
// absorb (candidate exclusion) or propagate (Constant).
func (b *base) fitCandidate(numStates int) (Model, error) {
	return b.fitOn(b.x, b.lengths, numStates)
}

// fitOn fits the given state count on an explicit observation view —
// fold handling passes train splits here without touching b's own state.
func (b *base) fitOn(x *mat.Dense, lengths []int, numStates int) (Model, error) {
	m, err := b.fitter.Fit(x, lengths, numStates, b.cfg.Seed)
	if err != nil {
		b.logf("%s: fit failed with %d states: %v", b.set.Item(), numStates, err)
		return nil, err
	}
	return m, nil
}

func (b *base) logf(format string, args ...any) {
	if b.cfg.Logf != nil {
		b.cfg.Logf(format, args...)
	}
}

// rangeEmpty reports the deterministic empty-candidate-range condition.
func (b *base) rangeEmpty() bool {
	return b.cfg.MinStates > b.cfg.MaxStates
}

// rivalSet is one rival item's pooled data, flattened once at construction.
type rivalSet struct {
	item    string
	x       *mat.Dense
	lengths []int
}

func flattenRivals(ownItem string, rivals []*seqset.Set) []rivalSet {
	rs := make([]rivalSet, 0, len(rivals))
	for _, r := range rivals {
		if r == nil || r.Item() == ownItem {
			continue
		}
		x, lengths := r.Flatten()
		rs = append(rs, rivalSet{item: r.Item(), x: x, lengths: lengths})
	}
	return rs
}

// gaussianFitter adapts package hmm as the default fitting capability.
type gaussianFitter struct {
	maxIter int
}

func (g gaussianFitter) Fit(x *mat.Dense, lengths []int, numStates int, seed int64) (Model, error) {
	m, err := hmm.Fit(x, lengths, numStates, hmm.Config{MaxIter: g.maxIter, Seed: seed})
	if err != nil {
		return nil, err
	}
	return m, nil
}
