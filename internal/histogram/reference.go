package histogram

// Reference computes the histogram of input in a single pass without any
// concurrency. Bucket b holds the number of elements equal to b.
//
// Every value must lie in [0, buckets); an out-of-range value panics with an
// index error.
func Reference(input []int, buckets int) Histogram {
	hist := New(buckets)
	for _, v := range input {
		hist[v]++
	}
	return hist
}
