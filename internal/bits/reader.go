// Package bits provides MSB-first bit reading and writing over byte buffers.
package bits

import "errors"

// ErrSeekRange indicates a seek outside the readable bits of the buffer.
var ErrSeekRange = errors.New("bits: seek position out of range")

// Reader reads bits from a byte buffer, most significant bit first.
//
// The reader tracks an absolute bit position so a caller can save it,
// run into the end of the available input, and later Seek back to the
// saved position once more data is known to be there.
type Reader struct {
	buffer []byte // Original buffer
	pos    int    // Current bit position (next bit to read)
	size   int    // Readable bits, at most 8*len(buffer)
	err    bool   // Error flag (buffer overrun)
}

// NewReader creates a Reader over every bit of data.
//
// Empty or nil buffers set the error flag.
func NewReader(data []byte) *Reader {
	return NewReaderSize(data, 8*len(data))
}

// NewReaderSize creates a Reader limited to the first nbits bits of data.
// It is used when the last byte of a segment is only partially filled.
// nbits is clamped to the buffer length.
func NewReaderSize(data []byte, nbits int) *Reader {
	if nbits > 8*len(data) {
		nbits = 8 * len(data)
	}
	if nbits < 0 {
		nbits = 0
	}

	r := &Reader{
		buffer: data,
		size:   nbits,
	}
	if len(data) == 0 {
		r.err = true
	}
	return r
}

// loadWindow loads up to 8 bytes from byte offset as a big-endian uint64.
// Handles partial reads at end of buffer by padding with zeros on the right.
func (r *Reader) loadWindow(offset int) uint64 {
	var w uint64
	for i := 0; i < 8; i++ {
		w <<= 8
		if offset+i < len(r.buffer) {
			w |= uint64(r.buffer[offset+i])
		}
	}
	return w
}

// Error returns true if a buffer overrun occurred.
func (r *Reader) Error() bool {
	return r.err
}

// Position returns the number of bits consumed so far.
func (r *Reader) Position() int {
	return r.pos
}

// BitsRemaining returns the number of unread bits.
func (r *Reader) BitsRemaining() int {
	return r.size - r.pos
}

// ShowBits returns the next n bits without consuming them.
// n must be 0-32. Bits past the end of the stream read as zero.
func (r *Reader) ShowBits(n uint) uint32 {
	if n == 0 {
		return 0
	}

	w := r.loadWindow(r.pos >> 3)
	w <<= uint(r.pos & 7)
	v := uint32(w >> (64 - n))

	// Mask out bits beyond the readable size
	if left := r.BitsRemaining(); left < int(n) {
		if left <= 0 {
			return 0
		}
		v &^= (1 << (n - uint(left))) - 1
	}
	return v
}

// FlushBits discards n bits from the stream.
// Flushing past the end sets the error flag and leaves the reader at the end.
func (r *Reader) FlushBits(n uint) {
	if r.err {
		return
	}

	if int(n) > r.BitsRemaining() {
		r.pos = r.size
		r.err = true
		return
	}
	r.pos += int(n)
}

// GetBits reads and returns n bits from the stream.
// n must be 0-32.
func (r *Reader) GetBits(n uint) uint32 {
	if n == 0 {
		return 0
	}

	ret := r.ShowBits(n)
	r.FlushBits(n)
	return ret
}

// Get1Bit reads and returns a single bit from the stream.
func (r *Reader) Get1Bit() uint8 {
	if r.err || r.pos >= r.size {
		r.err = true
		return 0
	}

	b := (r.buffer[r.pos>>3] >> (7 - uint(r.pos&7))) & 1
	r.pos++
	return b
}

// ByteAlign skips to the next byte boundary.
func (r *Reader) ByteAlign() {
	if rem := r.pos & 7; rem != 0 {
		r.FlushBits(uint(8 - rem))
	}
}

// Seek moves the reader to an absolute bit position and clears the
// error flag. pos must lie within [0, size].
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > r.size {
		return ErrSeekRange
	}
	r.pos = pos
	r.err = len(r.buffer) == 0
	return nil
}
