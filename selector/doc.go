// Package selector chooses the best hidden-state count for one vocabulary
// item's sequence model, then returns the model fitted with that count.
//
// 🚀 The contract
//
//	sel, err := selector.New(strategy, set, rivals, cfg)
//	model, err := sel.Select()
//
// Select is the one externally invoked operation per selector instance: it
// scans the candidate range [MinStates, MaxStates], scores each candidate
// by the strategy's rule, and returns exactly one fitted model — or
// ErrNoViableCandidate when not a single candidate could be fit AND scored.
//
// ✨ The four strategies
//
//   - Constant — no scoring at all: fit ConstantStates once and return it
//     (baseline/fallback; a fit failure propagates, there is no retry).
//   - BIC — minimize  -2·logL + p(k)·log(N)  with p(k) = k² + 2·F·k − 1
//     (transitions + means + diagonal variances) over the item's own data.
//   - DIC — maximize  logL(own) − mean(logL(rival))  using the same fitted
//     model against every other vocabulary item's pooled data.
//   - CV — maximize the mean held-out log-likelihood over deterministic
//     K folds (K = min(Folds, sequence count)), then refit the winner on
//     the complete item data; folds never produce the returned model.
//
// ⚖️ Failure policy (uniform across BIC/DIC/CV)
//
// A candidate whose fit or required score fails is EXCLUDED from the
// comparison — never ranked with a zero or sentinel value. DIC is
// deliberately asymmetric: a failed own-item score excludes the candidate
// entirely, while a failed rival score is only dropped from the mean.
// Only total failure propagates.
//
// Determinism: a fixed Config.Seed flows into every fit, fold layout is
// shuffle-free, and ties break toward the smaller state count — two fresh
// selectors over identical inputs select identical models.
//
// Concurrency: a Selector instance is single-threaded; distinct items are
// independent, so run one selector per item in parallel if you like.
//
// The fitting engine is a capability: anything implementing Fitter works;
// by default package hmm's Gaussian engine is used.
package selector
