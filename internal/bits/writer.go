package bits

// Writer packs bits into bytes, most significant bit first.
// The final partial byte is padded with zeros.
type Writer struct {
	buf   []byte
	acc   uint64 // Pending bits, right-justified
	nacc  uint   // Number of pending bits (0-7 between calls)
	total int    // Bits written
}

// PutBits appends the low n bits of v. n must be 0-32.
func (w *Writer) PutBits(v uint32, n uint) {
	if n == 0 {
		return
	}
	if n < 32 {
		v &= (1 << n) - 1
	}

	w.acc = w.acc<<n | uint64(v)
	w.nacc += n
	w.total += int(n)

	for w.nacc >= 8 {
		w.nacc -= 8
		w.buf = append(w.buf, byte(w.acc>>w.nacc))
	}
	w.acc &= (1 << w.nacc) - 1
}

// Put1Bit appends a single bit.
func (w *Writer) Put1Bit(b uint8) {
	w.PutBits(uint32(b&1), 1)
}

// Len returns the number of bits written.
func (w *Writer) Len() int {
	return w.total
}

// Bytes returns the packed bytes, padding the last byte with zeros.
func (w *Writer) Bytes() []byte {
	out := make([]byte, len(w.buf), len(w.buf)+1)
	copy(out, w.buf)
	if w.nacc > 0 {
		out = append(out, byte(w.acc<<(8-w.nacc)))
	}
	return out
}
