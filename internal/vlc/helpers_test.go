package vlc

import (
	"testing"

	"github.com/llehouerou/go-vc5/internal/bits"
)

// toyEntries is the two-entry codebook: "0" is a run of one zero and
// "11" is magnitude 5. "10" matches nothing.
var toyEntries = []Entry{
	{Size: 1, Bits: 0b0, Count: 1, Value: 0},
	{Size: 2, Bits: 0b11, Count: 1, Value: 5},
}

func toyCodebook(t testing.TB) *Codebook {
	t.Helper()
	cb, err := NewCodebook(uint32(len(toyEntries)), toyEntries)
	if err != nil {
		t.Fatalf("NewCodebook(toy): %v", err)
	}
	return cb
}

// largeLengthCounts is a complete code: number of codewords per length.
var largeLengthCounts = map[uint8]int{
	2:  1,
	3:  2,
	4:  3,
	6:  8,
	8:  32,
	12: 256,
}

// canonicalEntries assigns canonical codewords, shortest first, to the
// given number of codewords per length. Entries 5 and 40 are markers,
// even entries are zero runs and odd entries are magnitudes.
func canonicalEntries(counts map[uint8]int) []Entry {
	var entries []Entry
	code := uint32(0)
	prev := uint8(0)
	for size := uint8(1); size <= MaxCodewordSize; size++ {
		n := counts[size]
		if n == 0 {
			continue
		}
		if prev != 0 {
			code <<= size - prev
		}
		for j := 0; j < n; j++ {
			i := len(entries)
			e := Entry{Size: size, Bits: code}
			switch {
			case i == 5 || i == 40:
			case i%2 == 0:
				e.Count = uint32(i + 1)
			default:
				e.Count = 1
				e.Value = int32(i)
			}
			entries = append(entries, e)
			code++
		}
		prev = size
	}
	return entries
}

func largeCodebook(t testing.TB) *Codebook {
	t.Helper()
	entries := canonicalEntries(largeLengthCounts)
	cb, err := NewCodebook(uint32(len(entries)), entries)
	if err != nil {
		t.Fatalf("NewCodebook(large): %v", err)
	}
	return cb
}

// stream packs codewords given as (bits, size) pairs into a reader
// limited to exactly the written bits.
func stream(fields ...[2]uint32) *bits.Reader {
	var w bits.Writer
	for _, f := range fields {
		w.PutBits(f[0], uint(f[1]))
	}
	return bits.NewReaderSize(w.Bytes(), w.Len())
}
