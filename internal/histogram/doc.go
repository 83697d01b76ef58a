// Package histogram builds bucket histograms of bounded-range integers.
//
// Reference computes the single-threaded oracle. Parallel splits the input
// into contiguous ranges (see Partition), lets every worker tally its range
// into private counters and folds those counters into one shared Histogram
// under a mutex owned by the call. CheckTotal and Compare verify the result.
//
// All values passed in must lie in [0, buckets). The package does not
// truncate or wrap out-of-range values; callers validate input up front
// (see the input package).
package histogram
