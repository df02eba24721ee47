// Package hmmselect chooses the best hidden-state count for Gaussian
// hidden Markov models — one vocabulary item at a time, one statistical
// argument at a time.
//
// 🚀 What is hmmselect?
//
//	A deterministic, seedable model-selection library that brings together:
//		• Sequence data: per-item variable-length sequences + flattened views
//		• Fold splitting: contiguous, shuffle-free K-fold over sequence indices
//		• A fitting engine: diagonal-covariance Gaussian HMM (log-space Baum–Welch)
//		• Four selection strategies: Constant, BIC, DIC, cross-validation
//
// ✨ Why choose hmmselect?
//
//   - Reproducible – fixed seed ⇒ identical models, scores and selections
//   - Honest failures – unstable candidates are excluded, never zero-filled
//   - Pluggable – the selectors consume a Fitter capability, not the engine
//   - Pure Go – gonum for the numerics, nothing else
//
// Under the hood, everything is organized under four subpackages:
//
//	seqset/   — SequenceSet: ordered sequences + flattened matrix/lengths form
//	kfold/    — deterministic K-fold partitioning of sequence indices
//	hmm/      — Gaussian HMM fitting (Fit) and forward-algorithm scoring (Score)
//	selector/ — the selection contract & the Constant/BIC/DIC/CV strategies
//
// Quick sketch:
//
//	sequences ──► seqset.Set ──► selector.New(selector.BIC, set, nil, cfg)
//	                                   │
//	                                   ▼
//	                         sel.Select() ⇒ best-k Model
//
// Dive into each package's doc.go for formulas, failure policies and
// worked examples.
//
//	go get github.com/katalvlaran/hmmselect
package hmmselect
