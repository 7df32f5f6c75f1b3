package vc5

import (
	"io"

	"github.com/llehouerou/go-vc5/internal/vlc"
)

// Entry is one codebook row: a right-justified codeword of Size bits and
// the run (Count copies of Value) it stands for.
type Entry = vlc.Entry

// Codebook is an immutable, prefix-free codeword table.
type Codebook = vlc.Codebook

// Run is a decoded run: Count copies of the signed Value.
type Run = vlc.Run

// Symbol is a decoded run plus the index of the matched codebook entry.
type Symbol = vlc.Symbol

// Kind classifies a codebook entry or decoded symbol.
type Kind = vlc.Kind

// Symbol kinds.
const (
	KindRun    = vlc.KindRun
	KindValue  = vlc.KindValue
	KindMarker = vlc.KindMarker
)

// Sign codes following a non-zero magnitude.
const (
	PositiveCode = vlc.PositiveCode
	NegativeCode = vlc.NegativeCode
	SignCodeSize = vlc.SignCodeSize
)

// NewCodebook validates a codebook table and its declared length.
func NewCodebook(length uint32, entries []Entry) (*Codebook, error) {
	return vlc.NewCodebook(length, entries)
}

// ReadCodebook reads a codebook in the binary table layout: a big-endian
// uint32 length followed by that many 16-byte entries (size, bits, count,
// value).
func ReadCodebook(r io.Reader) (*Codebook, error) {
	return vlc.ReadCodebook(r)
}
