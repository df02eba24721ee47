package seqset

import "gonum.org/v1/gonum/mat"

// Set is the observation data for one vocabulary item: an ordered list of
// variable-length sequences together with the flattened matrix + lengths
// form. Both views are built once at construction from a deep copy of the
// input, so a Set is read-only afterwards.
type Set struct {
	item      string
	sequences [][][]float64 // per-sequence frames × features
	lengths   []int         // lengths[i] == len(sequences[i])
	flat      *mat.Dense    // all frames concatenated in sequence order
	features  int
	frames    int
}

// New builds a Set for the named item from frames-by-features sequences.
//
// Validation:
//   - at least one sequence            (ErrNoSequences)
//   - every sequence has ≥ 1 frame     (ErrEmptySequence)
//   - every frame has the same, non-zero feature count (ErrDimensionMismatch)
//
// Complexity: O(total frames × features) time and space (one deep copy).
func New(item string, sequences [][][]float64) (*Set, error) {
	if len(sequences) == 0 {
		return nil, ErrNoSequences
	}

	// First pass: validate shapes and count frames.
	features := 0
	frames := 0
	for _, seq := range sequences {
		if len(seq) == 0 {
			return nil, ErrEmptySequence
		}
		for _, frame := range seq {
			if len(frame) == 0 {
				return nil, ErrDimensionMismatch
			}
			if features == 0 {
				features = len(frame)
			}
			if len(frame) != features {
				return nil, ErrDimensionMismatch
			}
		}
		frames += len(seq)
	}

	// Second pass: deep-copy into both representations.
	s := &Set{
		item:      item,
		sequences: make([][][]float64, len(sequences)),
		lengths:   make([]int, len(sequences)),
		features:  features,
		frames:    frames,
	}
	data := make([]float64, 0, frames*features)
	for i, seq := range sequences {
		s.lengths[i] = len(seq)
		cp := make([][]float64, len(seq))
		for t, frame := range seq {
			row := make([]float64, features)
			copy(row, frame)
			cp[t] = row
			data = append(data, row...)
		}
		s.sequences[i] = cp
	}
	s.flat = mat.NewDense(frames, features, data)
	return s, nil
}

// Item returns the vocabulary-item identifier.
func (s *Set) Item() string { return s.item }

// Len returns the number of sequences.
func (s *Set) Len() int { return len(s.sequences) }

// Frames returns the total number of observation frames across all sequences.
func (s *Set) Frames() int { return s.frames }

// Features returns the per-frame feature dimensionality.
func (s *Set) Features() int { return s.features }

// Flatten returns the full-item flattened representation: the concatenated
// observation matrix and the parallel per-sequence lengths. Both are owned
// by the Set and must be treated as read-only by callers.
func (s *Set) Flatten() (*mat.Dense, []int) { return s.flat, s.lengths }

// Subset flattens the sequences at the given indices, in the given order,
// into a fresh observation matrix and lengths slice. The Set itself is
// never mutated, so Subset is safe to call while other flattened views are
// in use. Returns ErrIndexOutOfRange on any bad index and ErrNoSequences
// for an empty selection.
//
// Complexity: O(selected frames × features).
func (s *Set) Subset(indices []int) (*mat.Dense, []int, error) {
	if len(indices) == 0 {
		return nil, nil, ErrNoSequences
	}
	rows := 0
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.sequences) {
			return nil, nil, ErrIndexOutOfRange
		}
		rows += s.lengths[idx]
	}

	data := make([]float64, 0, rows*s.features)
	lengths := make([]int, len(indices))
	for i, idx := range indices {
		lengths[i] = s.lengths[idx]
		for _, frame := range s.sequences[idx] {
			data = append(data, frame...)
		}
	}
	return mat.NewDense(rows, s.features, data), lengths, nil
}
