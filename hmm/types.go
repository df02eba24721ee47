package hmm

import "errors"

var (
	// ErrBadInput indicates malformed observations, lengths or state count:
	// a non-positive state count, empty lengths, a non-positive sequence
	// length, or lengths that do not sum to the observation row count.
	ErrBadInput = errors.New("hmm: malformed observations, lengths or state count")

	// ErrTooFewFrames indicates fewer observation frames than requested
	// hidden states — the model is unidentifiable.
	ErrTooFewFrames = errors.New("hmm: fewer observation frames than hidden states")

	// ErrDimensionMismatch indicates scoring observations whose feature
	// dimensionality differs from the model's.
	ErrDimensionMismatch = errors.New("hmm: observation feature dimensionality mismatch")

	// ErrNumerical indicates numeric breakdown: a non-finite log-likelihood
	// or a hidden state with zero occupancy during estimation.
	ErrNumerical = errors.New("hmm: numeric instability during estimation or scoring")
)

const (
	// DefaultMaxIter is the estimation iteration budget when Config.MaxIter
	// is unset.
	DefaultMaxIter = 1000

	// DefaultTol is the relative log-likelihood improvement below which
	// estimation is considered converged, when Config.Tol is unset.
	DefaultTol = 1e-4

	// varFloor is the minimum per-dimension emission variance. Keeps the
	// densities proper when a state collapses onto very few frames.
	varFloor = 1e-5
)

// Config controls Fit.
//
// Zero values select the package defaults, so Config{} is a valid
// configuration (deterministic under the default seed policy).
type Config struct {
	// MaxIter bounds the number of EM iterations. <=0 ⇒ DefaultMaxIter.
	MaxIter int

	// Tol is the relative log-likelihood improvement treated as
	// convergence. <=0 ⇒ DefaultTol.
	Tol float64

	// Seed drives the deterministic initialization. 0 ⇒ the fixed default
	// stream (see rng.go).
	Seed int64
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{MaxIter: DefaultMaxIter, Tol: DefaultTol}
}

// Model is a fitted diagonal-covariance Gaussian HMM.
//
// All parameter slices are owned by the model; callers must treat them as
// read-only. Probabilities are kept in log space (LogInit, LogTrans may
// contain -Inf for impossible events).
type Model struct {
	// NumStates is the hidden-state count the model was fit with.
	NumStates int

	// NumFeatures is the per-frame feature dimensionality.
	NumFeatures int

	// LogInit[s] is the log initial probability of state s.
	LogInit []float64

	// LogTrans[i][j] is the log probability of transitioning i → j.
	LogTrans [][]float64

	// Means[s] and Vars[s] are the per-state emission mean and (floored)
	// diagonal variance vectors, one entry per feature.
	Means [][]float64
	Vars  [][]float64

	// TrainSequences and TrainFrames record how much data the model was
	// fit on.
	TrainSequences int
	TrainFrames    int

	// Converged reports whether estimation stopped on the tolerance rather
	// than the iteration budget; Iters is the number of EM iterations run.
	Converged bool
	Iters     int
}
