package histogram

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
)

// DefaultBuckets is the bucket count used when none is configured.
const DefaultBuckets = 5

// Histogram holds one non-negative counter per bucket.
type Histogram []int

// New returns a zeroed histogram with the given number of buckets.
func New(buckets int) Histogram {
	return make(Histogram, buckets)
}

// Sum returns the total of all buckets.
func (h Histogram) Sum() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

// Add folds other into h bucket by bucket. Both must have the same length.
func (h Histogram) Add(other Histogram) {
	for i, c := range other {
		h[i] += c
	}
}

// Equal reports whether h and other have identical buckets.
func (h Histogram) Equal(other Histogram) bool {
	if len(h) != len(other) {
		return false
	}
	for i := range h {
		if h[i] != other[i] {
			return false
		}
	}
	return true
}

// Fingerprint returns an xxh3 digest of the bucket counts. Equal histograms
// have equal fingerprints.
func (h Histogram) Fingerprint() uint64 {
	buf := make([]byte, 0, len(h)*8)
	for _, c := range h {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(c))
	}
	return xxh3.Hash(buf)
}

// String renders the histogram as "[c0 c1 ...]".
func (h Histogram) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range h {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte(']')
	return b.String()
}
