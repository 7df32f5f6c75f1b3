package vlc

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Binary table layout, all fields big-endian:
//
//	uint32 length
//	length × { uint32 size, uint32 bits, uint32 count, int32 value }
const (
	tableHeaderSize = 4
	tableEntrySize  = 16
)

// ReadCodebook reads a codebook in the binary table layout and validates it.
// A truncated table or an out-of-range size fails with ErrMalformedCodebook.
func ReadCodebook(r io.Reader) (*Codebook, error) {
	var hdr [tableHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: reading length: %w", ErrMalformedCodebook, err)
	}
	length := binary.BigEndian.Uint32(hdr[:])

	// Grow as entries arrive so a corrupt length cannot force a huge allocation
	entries := make([]Entry, 0, min(length, 1<<12))
	var buf [tableEntrySize]byte
	for i := uint32(0); i < length; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("%w: reading entry %d of %d: %w",
				ErrMalformedCodebook, i, length, err)
		}

		size := binary.BigEndian.Uint32(buf[0:4])
		if size == 0 || size > MaxCodewordSize {
			return nil, fmt.Errorf("%w: entry %d has size %d",
				ErrMalformedCodebook, i, size)
		}
		entries = append(entries, Entry{
			Size:  uint8(size),
			Bits:  binary.BigEndian.Uint32(buf[4:8]),
			Count: binary.BigEndian.Uint32(buf[8:12]),
			Value: int32(binary.BigEndian.Uint32(buf[12:16])),
		})
	}

	return NewCodebook(length, entries)
}

// WriteTo writes the codebook in the binary table layout.
func (cb *Codebook) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, tableHeaderSize+tableEntrySize*len(cb.entries))
	binary.BigEndian.PutUint32(buf, uint32(len(cb.entries)))

	p := buf[tableHeaderSize:]
	for _, e := range cb.entries {
		binary.BigEndian.PutUint32(p[0:4], uint32(e.Size))
		binary.BigEndian.PutUint32(p[4:8], e.Bits)
		binary.BigEndian.PutUint32(p[8:12], e.Count)
		binary.BigEndian.PutUint32(p[12:16], uint32(e.Value))
		p = p[tableEntrySize:]
	}

	n, err := w.Write(buf)
	return int64(n), err
}
