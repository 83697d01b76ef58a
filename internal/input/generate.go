// Package input produces the bounded-range integer sequences that histograms
// are built from.
package input

import (
	"fmt"
	"math/rand/v2"

	apperrors "github.com/agbru/histcalc/internal/errors"
)

// Sequence is an immutable run of values in [0, buckets). It must not be
// modified after Generate returns; histogram workers read it concurrently
// without locking.
type Sequence []int

// Generate returns n values drawn uniformly from [0, buckets) using a PCG
// source seeded with seed. The same (n, buckets, seed) always yields the
// same sequence.
func Generate(n, buckets int, seed uint64) (Sequence, error) {
	if n < 0 {
		return nil, apperrors.ValidationError{Field: "n", Message: "must be non-negative"}
	}
	if buckets < 1 {
		return nil, apperrors.ValidationError{Field: "buckets", Message: "must be at least 1"}
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = rng.IntN(buckets)
	}
	return seq, nil
}

// Validate reports the first value outside [0, buckets).
func Validate(seq []int, buckets int) error {
	for i, v := range seq {
		if v < 0 || v >= buckets {
			return apperrors.ValidationError{
				Field:   "input",
				Message: fmt.Sprintf("value %d at index %d is outside [0, %d)", v, i, buckets),
			}
		}
	}
	return nil
}
