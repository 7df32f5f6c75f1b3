package vc5

import (
	"errors"

	"github.com/llehouerou/go-vc5/internal/vlc"
)

// Decoding errors. Errors returned while decoding a bitstream are
// *DecodeError values wrapping ErrBitstreamExhausted or
// ErrUnmatchedCodeword; use errors.Is to test for them.
var (
	ErrMalformedCodebook  = vlc.ErrMalformedCodebook
	ErrBitstreamExhausted = vlc.ErrBitstreamExhausted
	ErrUnmatchedCodeword  = vlc.ErrUnmatchedCodeword

	// ErrBandOverflow indicates a run that extends past the end of a band.
	ErrBandOverflow = errors.New("vc5: run overflows band")
)

// DecodeError reports the bit offset at which decoding failed.
type DecodeError = vlc.DecodeError

// Error is a numeric codec error code.
type Error int

// Error codes.
const (
	ErrNone               Error = 0
	ErrCodeMalformedTable Error = 1
	ErrCodeEndOfStream    Error = 2
	ErrCodeBadCodeword    Error = 3
	ErrCodeBandOverflow   Error = 4
	ErrCodeUnexpected     Error = 5
)

var errMessages = [6]string{
	"No error",
	"Malformed codebook",
	"Bitstream ended inside a codeword",
	"Codeword not found in codebook",
	"Run extends past the end of the band",
	"Unexpected error",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}

// ErrorCode maps an error returned by this package to its numeric code.
// A nil error maps to ErrNone.
func ErrorCode(err error) Error {
	var code Error
	switch {
	case err == nil:
		return ErrNone
	case errors.As(err, &code):
		return code
	case errors.Is(err, ErrMalformedCodebook):
		return ErrCodeMalformedTable
	case errors.Is(err, ErrBitstreamExhausted):
		return ErrCodeEndOfStream
	case errors.Is(err, ErrUnmatchedCodeword):
		return ErrCodeBadCodeword
	case errors.Is(err, ErrBandOverflow):
		return ErrCodeBandOverflow
	}
	return ErrCodeUnexpected
}
