package histogram

// Range is a half-open index interval [Start, End) over the input.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by r.
func (r Range) Len() int { return r.End - r.Start }

// Partition returns the range worker id scans when n elements are split
// among threads workers. Every worker gets n/threads elements and the last
// worker also takes the remainder, so it may scan up to threads-1 extra
// elements. When threads > n all but the last worker get empty ranges.
//
// threads must be >= 1 and id must lie in [0, threads).
func Partition(id, n, threads int) Range {
	chunk := n / threads
	start := id * chunk
	end := start + chunk
	if id == threads-1 {
		end = n
	}
	return Range{Start: start, End: end}
}

// Plan returns the ranges of all threads workers in id order.
func Plan(n, threads int) []Range {
	ranges := make([]Range, threads)
	for id := range ranges {
		ranges[id] = Partition(id, n, threads)
	}
	return ranges
}
