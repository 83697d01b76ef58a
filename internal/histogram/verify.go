package histogram

import apperrors "github.com/agbru/histcalc/internal/errors"

// CheckTotal confirms that the buckets of h add up to expected.
// It returns an apperrors.ConsistencyError otherwise.
func CheckTotal(h Histogram, expected int) error {
	if sum := h.Sum(); sum != expected {
		return apperrors.ConsistencyError{Expected: expected, Observed: sum}
	}
	return nil
}

// Compare confirms that got equals ref bucket by bucket. On disagreement it
// returns an apperrors.MismatchError carrying the summed absolute difference.
// A bucket present in only one histogram is compared against zero.
func Compare(ref, got Histogram) error {
	if d := Discrepancy(ref, got); d != 0 || len(ref) != len(got) {
		return apperrors.MismatchError{Discrepancy: d}
	}
	return nil
}

// Discrepancy returns the sum over buckets of |ref[i] - got[i]|.
func Discrepancy(ref, got Histogram) int {
	n := max(len(ref), len(got))
	diff := 0
	for i := 0; i < n; i++ {
		var a, b int
		if i < len(ref) {
			a = ref[i]
		}
		if i < len(got) {
			b = got[i]
		}
		if a > b {
			diff += a - b
		} else {
			diff += b - a
		}
	}
	return diff
}
