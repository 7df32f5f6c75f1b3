package vlc

// Cursor supplies bits to the decoder, most significant bit first.
//
// Implemented by bits.Reader.
type Cursor interface {
	// ShowBits returns the next n bits (0-32) without consuming them.
	ShowBits(n uint) uint32
	// FlushBits consumes n bits.
	FlushBits(n uint)
	// Get1Bit consumes and returns one bit.
	Get1Bit() uint8
	// BitsRemaining returns the number of bits left in the stream.
	BitsRemaining() int
	// Position returns the number of bits consumed so far.
	Position() int
}
