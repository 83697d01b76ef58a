package histogram

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/histcalc/internal/errors"
)

// Parallel builds the histogram of input with exactly threads workers.
//
// Each worker scans its Partition range into a private counter array and then
// adds those counters into the shared histogram while holding a mutex that
// belongs to this call. Parallel returns only after every worker has finished
// its merge, so the returned histogram has no remaining writers.
//
// A worker that panics (for example on an input value outside
// [0, buckets)) is reported as an apperrors.WorkerError. The remaining
// workers are still joined before Parallel returns.
//
// Parameters:
//   - input: The shared, read-only input sequence.
//   - buckets: The number of buckets, at least 1.
//   - threads: The number of workers, at least 1.
//
// Returns:
//   - Histogram: The merged histogram, nil on error.
//   - error: A ValidationError for bad arguments or the first WorkerError.
func Parallel(input []int, buckets, threads int) (Histogram, error) {
	if buckets < 1 {
		return nil, apperrors.ValidationError{Field: "buckets", Message: "must be at least 1"}
	}
	if threads < 1 {
		return nil, apperrors.ValidationError{Field: "threads", Message: "must be at least 1"}
	}

	shared := New(buckets)
	var mu sync.Mutex
	var g errgroup.Group

	for id := 0; id < threads; id++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					cause, ok := r.(error)
					if !ok {
						cause = fmt.Errorf("%v", r)
					}
					err = apperrors.WorkerError{Worker: id, Cause: cause}
				}
			}()
			tally(id, threads, input, shared, &mu)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return shared, nil
}

// tally is the body of one worker. It recomputes its own range, counts into a
// private array and merges under mu. The lock is held for len(shared) steps
// regardless of the range size.
func tally(id, threads int, input []int, shared Histogram, mu *sync.Mutex) {
	r := Partition(id, len(input), threads)

	private := New(len(shared))
	for _, v := range input[r.Start:r.End] {
		private[v]++
	}

	mu.Lock()
	defer mu.Unlock()
	shared.Add(private)
}
