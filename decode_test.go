package vc5

import (
	"errors"
	"slices"
	"testing"
)

func TestDecodeBand_Full(t *testing.T) {
	dec := NewDecoder(testCodebook(t))
	data, n := encode(
		code{index: cbTwo},
		code{index: cbRun4},
		code{index: cbOne, neg: true},
		code{index: cbZero},
		code{index: cbBandEnd},
	)
	dec.ResetSize(data, n)

	dst := make([]int32, 7)
	band, err := dec.DecodeBand(dst)
	if err != nil {
		t.Fatalf("DecodeBand: %v", err)
	}
	if band.N != 7 || band.Terminated {
		t.Errorf("band = %+v, want 7 coefficients without marker", band)
	}
	want := []int32{2, 0, 0, 0, 0, -1, 0}
	if !slices.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}

	// The band end marker is still in the stream
	sym, err := dec.Symbol()
	if err != nil || sym.Index != cbBandEnd {
		t.Errorf("next symbol = %+v, %v, want band end marker", sym, err)
	}
}

func TestDecodeBand_Marker(t *testing.T) {
	dec := NewDecoder(testCodebook(t))
	data, n := encode(
		code{index: cbOne},
		code{index: cbZero},
		code{index: cbEscape},
		code{index: cbTwo},
	)
	dec.ResetSize(data, n)

	dst := []int32{9, 9, 9, 9, 9}
	band, err := dec.DecodeBand(dst)
	if err != nil {
		t.Fatalf("DecodeBand: %v", err)
	}
	if !band.Terminated || band.N != 2 || band.Marker.Index != cbEscape {
		t.Errorf("band = %+v, want 2 coefficients ended by marker %d", band, cbEscape)
	}
	if want := []int32{1, 0, 9, 9, 9}; !slices.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}

	run, err := dec.Run()
	if err != nil || run != (Run{Count: 1, Value: 2}) {
		t.Errorf("run after marker = %+v, %v, want {1 2}", run, err)
	}
}

func TestDecodeBand_Overflow(t *testing.T) {
	dec := NewDecoder(testCodebook(t))
	data, n := encode(code{index: cbOne}, code{index: cbRun4})
	dec.ResetSize(data, n)

	dst := make([]int32, 3)
	band, err := dec.DecodeBand(dst)
	if !errors.Is(err, ErrBandOverflow) {
		t.Fatalf("error = %v, want ErrBandOverflow", err)
	}
	if band.N != 1 {
		t.Errorf("N = %d, want 1", band.N)
	}
	if dec.Position() != 3 {
		t.Errorf("Position = %d, want 3 (overflowing run unconsumed)", dec.Position())
	}
	if want := []int32{1, 0, 0}; !slices.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}

func TestDecodeBand_Exhausted(t *testing.T) {
	dec := NewDecoder(testCodebook(t))
	data, n := encode(code{index: cbTwo, neg: true}, code{index: cbZero})
	dec.ResetSize(data, n)

	dst := make([]int32, 4)
	band, err := dec.DecodeBand(dst)
	if !errors.Is(err, ErrBitstreamExhausted) {
		t.Fatalf("error = %v, want ErrBitstreamExhausted", err)
	}
	if band.N != 2 || band.Terminated {
		t.Errorf("band = %+v, want 2 coefficients", band)
	}
	if want := []int32{-2, 0, 0, 0}; !slices.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}

func TestDecodeBand_Empty(t *testing.T) {
	dec := NewDecoder(testCodebook(t))
	data, n := encode(code{index: cbOne})
	dec.ResetSize(data, n)

	band, err := dec.DecodeBand(nil)
	if err != nil || band.N != 0 {
		t.Errorf("DecodeBand(nil) = %+v, %v", band, err)
	}
	if dec.Position() != 0 {
		t.Errorf("Position = %d, want 0", dec.Position())
	}
}
