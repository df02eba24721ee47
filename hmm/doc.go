// Package hmm fits diagonal-covariance Gaussian hidden Markov models to
// multivariate observation sequences and scores observations against a
// fitted model.
//
// 🚀 What does it do?
//
//	Fit      — seeded deterministic initialization + log-space Baum–Welch
//	           (expectation-maximization) under a bounded iteration budget.
//	Score    — forward-algorithm log-likelihood of a flattened observation
//	           matrix, summed over its per-sequence segments.
//
// ✨ Contract highlights:
//
//   - Deterministic: identical observations, state count and seed produce
//     an identical model and identical scores. Seed 0 selects a fixed
//     default stream; there are no time-based sources anywhere.
//   - Bounded: estimation stops at Config.MaxIter or when the relative
//     log-likelihood improvement falls below Config.Tol. Hitting the budget
//     is NOT an error — the model is returned best-effort with
//     Converged=false.
//   - Honest failures: malformed inputs return ErrBadInput or
//     ErrDimensionMismatch, too little data for the requested state count
//     returns ErrTooFewFrames, and numeric breakdown during estimation or
//     scoring returns ErrNumerical. No warnings, no global state.
//
// Observations are flattened: one frames×features matrix holding every
// sequence concatenated in order, plus a parallel list of per-sequence
// lengths (see package seqset).
//
// Variance floors keep emission densities proper when a state collapses
// onto few frames; floored variances are a best-effort recovery, not an
// error.
//
// Numerics: all forward/backward recursions run in log space via
// gonum's floats.LogSumExp; per-dimension emission densities use
// gonum's distuv.Normal.
package hmm
