package histogram

import (
	"errors"
	"math/rand/v2"
	"runtime"
	"strconv"
	"testing"

	apperrors "github.com/agbru/histcalc/internal/errors"
)

func TestParallelExamples(t *testing.T) {
	t.Parallel()
	input := []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4}
	want := Histogram{2, 2, 2, 2, 2}

	for _, threads := range []int{1, 2, 3, 4, 10, 11, 128} {
		got, err := Parallel(input, 5, threads)
		if err != nil {
			t.Fatalf("threads=%d: unexpected error: %v", threads, err)
		}
		if !got.Equal(want) {
			t.Errorf("threads=%d: got %v, want %v", threads, got, want)
		}
	}
}

func TestParallelEmptyInput(t *testing.T) {
	t.Parallel()
	got, err := Parallel(nil, 5, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(New(5)) {
		t.Errorf("got %v, want all zeros", got)
	}
	if err := CheckTotal(got, 0); err != nil {
		t.Errorf("CheckTotal on empty input: %v", err)
	}
}

// TestParallelMatchesReference runs the standard thread sweep over a random
// input and compares every result against the reference.
func TestParallelMatchesReference(t *testing.T) {
	t.Parallel()
	const n, buckets = 100_003, 7
	rng := rand.New(rand.NewPCG(42, 42))
	input := make([]int, n)
	for i := range input {
		input[i] = rng.IntN(buckets)
	}
	ref := Reference(input, buckets)

	for _, threads := range []int{1, 2, 4, 8, 16, 32, 64, 128} {
		got, err := Parallel(input, buckets, threads)
		if err != nil {
			t.Fatalf("threads=%d: %v", threads, err)
		}
		if err := CheckTotal(got, n); err != nil {
			t.Errorf("threads=%d: %v", threads, err)
		}
		if err := Compare(ref, got); err != nil {
			t.Errorf("threads=%d: %v", threads, err)
		}
	}
}

func TestParallelInvalidArguments(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		buckets int
		threads int
		field   string
	}{
		{"zero threads", 5, 0, "threads"},
		{"negative threads", 5, -2, "threads"},
		{"zero buckets", 0, 4, "buckets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parallel([]int{0}, tt.buckets, tt.threads)
			var ve apperrors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

// TestParallelOutOfRangeValue verifies that a worker failing on a bad value
// is reported and does not leave other workers running.
func TestParallelOutOfRangeValue(t *testing.T) {
	t.Parallel()
	input := []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 9}

	got, err := Parallel(input, 5, 3)
	if got != nil {
		t.Errorf("expected nil histogram on error, got %v", got)
	}
	var we apperrors.WorkerError
	if !errors.As(err, &we) {
		t.Fatalf("expected WorkerError, got %v", err)
	}
	if we.Worker != 2 {
		t.Errorf("Worker = %d, want 2 (the range holding index 9)", we.Worker)
	}
	var re runtime.Error
	if !errors.As(err, &re) {
		t.Errorf("cause should stay a runtime.Error, got %T", we.Cause)
	}
}

// TestParallelRepeated hammers the merge path so that the race detector can
// observe concurrent merges.
func TestParallelRepeated(t *testing.T) {
	t.Parallel()
	input := make([]int, 4096)
	for i := range input {
		input[i] = i % 16
	}
	ref := Reference(input, 16)
	for round := 0; round < 50; round++ {
		got, err := Parallel(input, 16, 32)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if !got.Equal(ref) {
			t.Fatalf("round %d: got %v, want %v", round, got, ref)
		}
	}
}

func BenchmarkReference(b *testing.B) {
	input := make([]int, 1<<20)
	for i := range input {
		input[i] = i % DefaultBuckets
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Reference(input, DefaultBuckets)
	}
}

func BenchmarkParallel(b *testing.B) {
	input := make([]int, 1<<20)
	for i := range input {
		input[i] = i % DefaultBuckets
	}
	for _, threads := range []int{1, 4, 16} {
		b.Run("threads="+strconv.Itoa(threads), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Parallel(input, DefaultBuckets, threads); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
