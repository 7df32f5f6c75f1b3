package vc5

import (
	"github.com/llehouerou/go-vc5/internal/bits"
	"github.com/llehouerou/go-vc5/internal/vlc"
)

// Decoder decodes runs from one bitstream using a shared codebook.
// A Decoder holds the bit position and must not be used concurrently.
type Decoder struct {
	cb *Codebook
	r  *bits.Reader
}

// NewDecoder creates a decoder for cb with no input. Call Reset before
// decoding.
func NewDecoder(cb *Codebook) *Decoder {
	return &Decoder{
		cb: cb,
		r:  bits.NewReader(nil),
	}
}

// Reset starts decoding every bit of data from the beginning.
func (d *Decoder) Reset(data []byte) {
	d.r = bits.NewReader(data)
}

// ResetSize starts decoding the first nbits bits of data.
func (d *Decoder) ResetSize(data []byte, nbits int) {
	d.r = bits.NewReaderSize(data, nbits)
}

// Codebook returns the decoder's codebook.
func (d *Decoder) Codebook() *Codebook {
	return d.cb
}

// Position returns the number of bits consumed so far.
func (d *Decoder) Position() int {
	return d.r.Position()
}

// BitsRemaining returns the number of bits not yet decoded.
func (d *Decoder) BitsRemaining() int {
	return d.r.BitsRemaining()
}

// Seek moves to an absolute bit position, typically one saved with
// Position before a call that failed with ErrBitstreamExhausted.
func (d *Decoder) Seek(pos int) error {
	return d.r.Seek(pos)
}

// Run decodes the next signed run.
func (d *Decoder) Run() (Run, error) {
	return vlc.GetRun(d.r, d.cb)
}

// Symbol decodes the next signed run together with the index of its
// codebook entry, so markers can be told apart.
func (d *Decoder) Symbol() (Symbol, error) {
	return vlc.DecodeSymbol(d.r, d.cb)
}

// Rlv decodes the next codeword without reading a sign bit. The value is
// the unsigned magnitude stored in the codebook.
func (d *Decoder) Rlv() (Symbol, error) {
	return vlc.GetRlv(d.r, d.cb)
}
