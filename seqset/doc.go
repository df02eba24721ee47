// Package seqset holds the observation data for one vocabulary item in the
// two representations model selection needs, and keeps them consistent by
// construction:
//
//   - an ordered list of variable-length sequences (frames × features),
//     addressable by index — what fold splitting operates on;
//   - a single flattened observation matrix plus a parallel list of
//     per-sequence lengths — what HMM fitting consumes.
//
// Concatenating the sequences in order always reproduces the flattened
// matrix; the per-sequence lengths always sum to its row count.
//
// A Set is immutable after New: Subset produces fresh flattened views for
// arbitrary index selections (e.g. cross-validation folds) without touching
// the Set's own storage, so a Set may be shared by any number of readers.
package seqset
