package hmm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Fit estimates a diagonal-covariance Gaussian HMM with numStates hidden
// states from flattened observations x (frames × features) segmented by
// lengths.
//
// Estimation outline:
//  1. Seeded deterministic initialization: per-state means drawn from
//     distinct observation frames via a derived RNG stream, variances set
//     to the (floored) global per-feature variance, uniform initial and
//     transition probabilities.
//  2. Log-space Baum–Welch until the relative log-likelihood improvement
//     drops below cfg.Tol or cfg.MaxIter iterations have run. Hitting the
//     budget returns the best-effort model with Converged=false.
//
// Errors:
//   - ErrBadInput      — numStates < 1, zero features, malformed lengths.
//   - ErrTooFewFrames  — fewer frames than numStates.
//   - ErrNumerical     — non-finite likelihood or empty state occupancy.
//
// Complexity: O(MaxIter · frames · numStates² ) time,
// O(maxSeqLen · numStates) working memory per sequence.
func Fit(x *mat.Dense, lengths []int, numStates int, cfg Config) (*Model, error) {
	rows, cols := x.Dims()
	if numStates < 1 || cols < 1 {
		return nil, ErrBadInput
	}
	if err := checkLengths(lengths, rows); err != nil {
		return nil, err
	}
	if rows < numStates {
		return nil, ErrTooFewFrames
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = DefaultMaxIter
	}
	if cfg.Tol <= 0 {
		cfg.Tol = DefaultTol
	}

	m := initModel(x, numStates, cfg.Seed)
	m.TrainSequences = len(lengths)
	m.TrainFrames = rows

	prev := math.Inf(-1)
	for iter := 1; iter <= cfg.MaxIter; iter++ {
		logLik, acc, err := expectation(m, x, lengths)
		if err != nil {
			return nil, err
		}
		if err = maximization(m, acc, len(lengths)); err != nil {
			return nil, err
		}
		m.Iters = iter

		if iter > 1 && math.Abs(logLik-prev) <= cfg.Tol*math.Max(1, math.Abs(prev)) {
			m.Converged = true
			break
		}
		prev = logLik
	}
	return m, nil
}

// Score returns the forward-algorithm log-likelihood the model assigns to
// the flattened observations x segmented by lengths, summed over sequences.
//
// Errors:
//   - ErrDimensionMismatch — x's feature count differs from the model's.
//   - ErrBadInput          — malformed lengths.
//   - ErrNumerical         — non-finite log-likelihood (degenerate model or
//     observations impossible under it).
//
// Complexity: O(frames · numStates²).
func (m *Model) Score(x *mat.Dense, lengths []int) (float64, error) {
	rows, cols := x.Dims()
	if cols != m.NumFeatures {
		return 0, ErrDimensionMismatch
	}
	if err := checkLengths(lengths, rows); err != nil {
		return 0, err
	}

	norms := m.emissionDists()
	total := 0.0
	start := 0
	for _, seqLen := range lengths {
		logB := emissionLogProbs(norms, x, start, seqLen)
		alpha := forward(m, logB)
		total += floats.LogSumExp(alpha[seqLen-1])
		start += seqLen
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, ErrNumerical
	}
	return total, nil
}

// checkLengths validates a per-sequence length list against the flattened
// row count: non-empty, every length positive, lengths summing to rows.
func checkLengths(lengths []int, rows int) error {
	if len(lengths) == 0 {
		return ErrBadInput
	}
	sum := 0
	for _, n := range lengths {
		if n < 1 {
			return ErrBadInput
		}
		sum += n
	}
	if sum != rows {
		return ErrBadInput
	}
	return nil
}

// initModel builds the deterministic starting point for estimation.
// Means come from distinct observation frames chosen by a stream derived
// from (seed, numStates); variances are the floored global per-feature
// variance; initial and transition probabilities are uniform.
func initModel(x *mat.Dense, numStates int, seed int64) *Model {
	rows, cols := x.Dims()
	rng := deriveRNG(seed, uint64(numStates))

	// Global per-feature mean and variance (biased, matching the M-step).
	gMean := make([]float64, cols)
	for t := 0; t < rows; t++ {
		floats.Add(gMean, x.RawRowView(t))
	}
	floats.Scale(1/float64(rows), gMean)
	gVar := make([]float64, cols)
	for t := 0; t < rows; t++ {
		row := x.RawRowView(t)
		for f := 0; f < cols; f++ {
			d := row[f] - gMean[f]
			gVar[f] += d * d
		}
	}
	for f := 0; f < cols; f++ {
		gVar[f] = math.Max(gVar[f]/float64(rows), varFloor)
	}

	m := &Model{
		NumStates:   numStates,
		NumFeatures: cols,
		LogInit:     make([]float64, numStates),
		LogTrans:    make([][]float64, numStates),
		Means:       make([][]float64, numStates),
		Vars:        make([][]float64, numStates),
	}
	logUniform := -math.Log(float64(numStates))
	perm := rng.Perm(rows)
	for s := 0; s < numStates; s++ {
		m.LogInit[s] = logUniform
		m.LogTrans[s] = make([]float64, numStates)
		for j := 0; j < numStates; j++ {
			m.LogTrans[s][j] = logUniform
		}
		mean := make([]float64, cols)
		copy(mean, x.RawRowView(perm[s]))
		m.Means[s] = mean
		variance := make([]float64, cols)
		copy(variance, gVar)
		m.Vars[s] = variance
	}
	return m
}

// accumulators collects the sufficient statistics of one E-step, in
// probability space.
type accumulators struct {
	init  []float64   // expected initial-state occupancy
	trans [][]float64 // expected transition counts
	gamma []float64   // total state occupancy
	mean  [][]float64 // Σ γ·x   per state/feature
	sq    [][]float64 // Σ γ·x²  per state/feature
}

func newAccumulators(numStates, numFeatures int) *accumulators {
	acc := &accumulators{
		init:  make([]float64, numStates),
		trans: make([][]float64, numStates),
		gamma: make([]float64, numStates),
		mean:  make([][]float64, numStates),
		sq:    make([][]float64, numStates),
	}
	for s := 0; s < numStates; s++ {
		acc.trans[s] = make([]float64, numStates)
		acc.mean[s] = make([]float64, numFeatures)
		acc.sq[s] = make([]float64, numFeatures)
	}
	return acc
}

// expectation runs forward/backward over every sequence and returns the
// total log-likelihood plus the accumulated sufficient statistics.
func expectation(m *Model, x *mat.Dense, lengths []int) (float64, *accumulators, error) {
	norms := m.emissionDists()
	acc := newAccumulators(m.NumStates, m.NumFeatures)

	totalLogLik := 0.0
	start := 0
	for _, seqLen := range lengths {
		logB := emissionLogProbs(norms, x, start, seqLen)
		alpha := forward(m, logB)
		beta := backward(m, logB)

		seqLogLik := floats.LogSumExp(alpha[seqLen-1])
		if math.IsNaN(seqLogLik) || math.IsInf(seqLogLik, 0) {
			return 0, nil, ErrNumerical
		}
		totalLogLik += seqLogLik

		// State occupancies γ and emission moments.
		for t := 0; t < seqLen; t++ {
			row := x.RawRowView(start + t)
			for s := 0; s < m.NumStates; s++ {
				g := math.Exp(alpha[t][s] + beta[t][s] - seqLogLik)
				if t == 0 {
					acc.init[s] += g
				}
				acc.gamma[s] += g
				for f := 0; f < m.NumFeatures; f++ {
					acc.mean[s][f] += g * row[f]
					acc.sq[s][f] += g * row[f] * row[f]
				}
			}
		}

		// Expected transition counts ξ.
		for t := 0; t < seqLen-1; t++ {
			for i := 0; i < m.NumStates; i++ {
				for j := 0; j < m.NumStates; j++ {
					acc.trans[i][j] += math.Exp(
						alpha[t][i] + m.LogTrans[i][j] + logB[t+1][j] + beta[t+1][j] - seqLogLik)
				}
			}
		}

		start += seqLen
	}
	return totalLogLik, acc, nil
}

// maximization re-estimates the model parameters from accumulated
// statistics. A state with (numerically) zero total occupancy cannot be
// re-estimated and surfaces as ErrNumerical.
func maximization(m *Model, acc *accumulators, numSequences int) error {
	for s := 0; s < m.NumStates; s++ {
		occ := acc.gamma[s]
		if occ <= 0 || math.IsNaN(occ) || math.IsInf(occ, 0) {
			return ErrNumerical
		}

		m.LogInit[s] = safeLog(acc.init[s] / float64(numSequences))

		// A state that never transitions out (only ever observed at final
		// frames) keeps its previous row.
		rowSum := floats.Sum(acc.trans[s])
		if rowSum > 0 {
			for j := 0; j < m.NumStates; j++ {
				m.LogTrans[s][j] = safeLog(acc.trans[s][j] / rowSum)
			}
		}

		for f := 0; f < m.NumFeatures; f++ {
			mu := acc.mean[s][f] / occ
			m.Means[s][f] = mu
			m.Vars[s][f] = math.Max(acc.sq[s][f]/occ-mu*mu, varFloor)
		}
	}
	return nil
}

// emissionDists materializes the per-state, per-feature Gaussian densities.
func (m *Model) emissionDists() [][]distuv.Normal {
	norms := make([][]distuv.Normal, m.NumStates)
	for s := 0; s < m.NumStates; s++ {
		norms[s] = make([]distuv.Normal, m.NumFeatures)
		for f := 0; f < m.NumFeatures; f++ {
			norms[s][f] = distuv.Normal{Mu: m.Means[s][f], Sigma: math.Sqrt(m.Vars[s][f])}
		}
	}
	return norms
}

// emissionLogProbs returns logB where logB[t][s] is the log density of the
// frame at row start+t under state s (diagonal covariance ⇒ the sum of
// per-dimension normal log densities).
func emissionLogProbs(norms [][]distuv.Normal, x *mat.Dense, start, seqLen int) [][]float64 {
	numStates := len(norms)
	logB := make([][]float64, seqLen)
	for t := 0; t < seqLen; t++ {
		row := x.RawRowView(start + t)
		logB[t] = make([]float64, numStates)
		for s := 0; s < numStates; s++ {
			lp := 0.0
			for f, n := range norms[s] {
				lp += n.LogProb(row[f])
			}
			logB[t][s] = lp
		}
	}
	return logB
}

// forward computes the log-space forward lattice α for one sequence.
func forward(m *Model, logB [][]float64) [][]float64 {
	seqLen := len(logB)
	alpha := make([][]float64, seqLen)
	alpha[0] = make([]float64, m.NumStates)
	for s := 0; s < m.NumStates; s++ {
		alpha[0][s] = m.LogInit[s] + logB[0][s]
	}
	work := make([]float64, m.NumStates)
	for t := 1; t < seqLen; t++ {
		alpha[t] = make([]float64, m.NumStates)
		for s := 0; s < m.NumStates; s++ {
			for j := 0; j < m.NumStates; j++ {
				work[j] = alpha[t-1][j] + m.LogTrans[j][s]
			}
			alpha[t][s] = floats.LogSumExp(work) + logB[t][s]
		}
	}
	return alpha
}

// backward computes the log-space backward lattice β for one sequence.
func backward(m *Model, logB [][]float64) [][]float64 {
	seqLen := len(logB)
	beta := make([][]float64, seqLen)
	beta[seqLen-1] = make([]float64, m.NumStates) // log 1 == 0
	work := make([]float64, m.NumStates)
	for t := seqLen - 2; t >= 0; t-- {
		beta[t] = make([]float64, m.NumStates)
		for s := 0; s < m.NumStates; s++ {
			for j := 0; j < m.NumStates; j++ {
				work[j] = m.LogTrans[s][j] + logB[t+1][j] + beta[t+1][j]
			}
			beta[t][s] = floats.LogSumExp(work)
		}
	}
	return beta
}

// safeLog maps non-positive inputs to -Inf; tiny negative accumulator
// residue must not turn into NaN.
func safeLog(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return math.Log(v)
}
