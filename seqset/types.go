package seqset

import "errors"

var (
	// ErrNoSequences indicates an attempt to build a Set from zero sequences.
	ErrNoSequences = errors.New("seqset: item must have at least one sequence")

	// ErrEmptySequence indicates a sequence with zero frames.
	ErrEmptySequence = errors.New("seqset: sequence must have at least one frame")

	// ErrDimensionMismatch indicates frames with inconsistent (or zero)
	// feature dimensionality within or across sequences.
	ErrDimensionMismatch = errors.New("seqset: inconsistent feature dimensionality")

	// ErrIndexOutOfRange indicates a sequence index outside [0, Len).
	ErrIndexOutOfRange = errors.New("seqset: sequence index out of range")
)
