package selector

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilSet indicates construction without item data.
	ErrNilSet = errors.New("selector: nil sequence set")

	// ErrBadConfig indicates an invalid Config field (non-positive
	// MinStates, ConstantStates or Folds).
	ErrBadConfig = errors.New("selector: invalid configuration")

	// ErrUnknownStrategy indicates a Strategy value outside the closed set.
	ErrUnknownStrategy = errors.New("selector: unknown strategy")

	// ErrNoRivals indicates a DIC selector constructed without any other
	// vocabulary item to discriminate against.
	ErrNoRivals = errors.New("selector: DIC requires at least one rival item")

	// ErrEmptyStateRange indicates MinStates > MaxStates: there is no
	// candidate to evaluate, deterministically.
	ErrEmptyStateRange = errors.New("selector: empty candidate state range")

	// ErrNoViableCandidate indicates every candidate state count failed to
	// fit or score — no model can be returned for the item.
	ErrNoViableCandidate = errors.New("selector: no candidate state count produced a usable model")
)

// Strategy names one of the closed set of selection algorithms.
type Strategy int

const (
	// Constant fits a fixed, configured state count; no comparison.
	Constant Strategy = iota

	// BIC minimizes the Bayesian Information Criterion.
	BIC

	// DIC maximizes the Discriminative Information Criterion against the
	// rival items.
	DIC

	// CV maximizes the mean held-out log-likelihood across K folds.
	CV
)

// String implements fmt.Stringer for diagnostics.
func (s Strategy) String() string {
	switch s {
	case Constant:
		return "Constant"
	case BIC:
		return "BIC"
	case DIC:
		return "DIC"
	case CV:
		return "CV"
	default:
		return "Unknown"
	}
}

// Model is the scoring capability a fitted model must expose: the
// log-likelihood of flattened observations segmented by lengths, or a
// ScoreFailure error.
type Model interface {
	Score(x *mat.Dense, lengths []int) (float64, error)
}

// Fitter is the fitting capability the selectors consume. Fit must be
// deterministic given identical observations, lengths, state count and
// seed, and must return an error (a FitFailure) rather than a degenerate
// model when it cannot produce a valid fit.
type Fitter interface {
	Fit(x *mat.Dense, lengths []int, numStates int, seed int64) (Model, error)
}

// Config carries the per-item selection configuration. All fields are
// read-only once a selector is constructed.
type Config struct {
	// MinStates and MaxStates bound the candidate hidden-state counts,
	// inclusive. MinStates > MaxStates makes every range-scanning strategy
	// fail with ErrEmptyStateRange at Select time.
	MinStates int
	MaxStates int

	// ConstantStates is the fixed count the Constant strategy fits,
	// regardless of the range above.
	ConstantStates int

	// Folds caps the cross-validation fold count; the effective count is
	// min(Folds, sequence count). With fewer than 2 usable folds, CV falls
	// back to fit-on-all/score-on-all candidate scoring.
	Folds int

	// Seed is passed to every fit for reproducibility. 0 lets the fitting
	// engine apply its own fixed default-seed policy.
	Seed int64

	// MaxIter bounds the fitting engine's iteration budget when the
	// built-in engine is used. <=0 ⇒ the engine default.
	MaxIter int

	// Logf, when non-nil, receives per-candidate diagnostics (fits,
	// failures, scores). Nil means silent.
	Logf func(format string, args ...any)

	// Fitter overrides the fitting capability. Nil ⇒ the built-in Gaussian
	// HMM engine.
	Fitter Fitter
}

// DefaultConfig returns the conventional setup: candidate range [2, 10],
// constant fallback of 3 states, up to 3 folds, seed 14.
func DefaultConfig() Config {
	return Config{
		MinStates:      2,
		MaxStates:      10,
		ConstantStates: 3,
		Folds:          3,
		Seed:           14,
	}
}
