package vc5

import (
	"testing"

	"github.com/llehouerou/go-vc5/internal/bits"
)

// Test codebook indices.
const (
	cbZero    = 0 // "0"     one zero
	cbOne     = 1 // "10"    ±1
	cbTwo     = 2 // "110"   ±2
	cbRun4    = 3 // "1110"  four zeros
	cbBandEnd = 4 // "11110" marker
	cbEscape  = 5 // "11111" marker
)

var testEntries = []Entry{
	{Size: 1, Bits: 0b0, Count: 1, Value: 0},
	{Size: 2, Bits: 0b10, Count: 1, Value: 1},
	{Size: 3, Bits: 0b110, Count: 1, Value: 2},
	{Size: 4, Bits: 0b1110, Count: 4, Value: 0},
	{Size: 5, Bits: 0b11110, Count: 0, Value: 0},
	{Size: 5, Bits: 0b11111, Count: 0, Value: 0},
}

func testCodebook(t testing.TB) *Codebook {
	t.Helper()
	cb, err := NewCodebook(uint32(len(testEntries)), testEntries)
	if err != nil {
		t.Fatalf("NewCodebook: %v", err)
	}
	return cb
}

// code is one codeword in a test stream; sign is written only for
// magnitudes.
type code struct {
	index int
	neg   bool
}

func encode(codes ...code) ([]byte, int) {
	var w bits.Writer
	for _, c := range codes {
		e := testEntries[c.index]
		w.PutBits(e.Bits, uint(e.Size))
		if e.Value != 0 {
			if c.neg {
				w.Put1Bit(NegativeCode)
			} else {
				w.Put1Bit(PositiveCode)
			}
		}
	}
	return w.Bytes(), w.Len()
}
