package histogram

import "testing"

func TestPartition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		n       int
		threads int
		want    []Range
	}{
		{"even split", 10, 2, []Range{{0, 5}, {5, 10}}},
		{"remainder to last", 10, 3, []Range{{0, 3}, {3, 6}, {6, 10}}},
		{"single worker", 7, 1, []Range{{0, 7}}},
		{"more workers than elements", 2, 4, []Range{{0, 0}, {0, 0}, {0, 0}, {0, 2}}},
		{"empty input", 0, 3, []Range{{0, 0}, {0, 0}, {0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for id, want := range tt.want {
				if got := Partition(id, tt.n, tt.threads); got != want {
					t.Errorf("Partition(%d, %d, %d) = %+v, want %+v", id, tt.n, tt.threads, got, want)
				}
			}
		})
	}
}

// TestPartitionCoverage checks that every index is visited exactly once for a
// grid of sizes and thread counts.
func TestPartitionCoverage(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, 1, 2, 7, 10, 127, 128, 1000} {
		for _, threads := range []int{1, 2, 3, 4, 8, 16, 64, 128, 200} {
			visits := make([]int, n)
			for _, r := range Plan(n, threads) {
				for i := r.Start; i < r.End; i++ {
					visits[i]++
				}
			}
			for i, v := range visits {
				if v != 1 {
					t.Fatalf("n=%d threads=%d: index %d visited %d times", n, threads, i, v)
				}
			}
		}
	}
}

// TestPartitionLastWorkerImbalance documents that only the last worker
// absorbs the division remainder.
func TestPartitionLastWorkerImbalance(t *testing.T) {
	t.Parallel()
	const n, threads = 1000, 64
	ranges := Plan(n, threads)
	chunk := n / threads
	for id, r := range ranges[:threads-1] {
		if r.Len() != chunk {
			t.Errorf("worker %d: len %d, want %d", id, r.Len(), chunk)
		}
	}
	last := ranges[threads-1]
	if extra := last.Len() - chunk; extra != n%threads || extra > threads-1 {
		t.Errorf("last worker extra = %d, want %d", extra, n%threads)
	}
}
