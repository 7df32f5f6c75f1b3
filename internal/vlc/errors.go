package vlc

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCodebook indicates a codebook that cannot be used for
	// decoding: a length mismatch, an invalid size or a prefix conflict.
	ErrMalformedCodebook = errors.New("vlc: malformed codebook")

	// ErrBitstreamExhausted indicates the stream ended before a complete
	// codeword or its sign bit.
	ErrBitstreamExhausted = errors.New("vlc: bitstream exhausted")

	// ErrUnmatchedCodeword indicates that no codeword matches the next bits
	// even though enough bits are available.
	ErrUnmatchedCodeword = errors.New("vlc: unmatched codeword")
)

// DecodeError reports where in the bitstream decoding failed.
// It wraps ErrBitstreamExhausted or ErrUnmatchedCodeword.
type DecodeError struct {
	Offset int    // Bit position of the failed codeword
	Bits   uint32 // Bits looked at, right-justified
	Len    int    // Number of bits in Bits
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("%v at bit %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v at bit %d (next bits %0*b)", e.Err, e.Offset, e.Len, e.Bits)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
