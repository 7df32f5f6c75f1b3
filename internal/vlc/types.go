// Package vlc implements variable-length run/value decoding against a
// fixed prefix-free codebook.
package vlc

// Codewords for the sign bit that follows a non-zero magnitude.
const (
	PositiveCode = 0 // Sign code for a positive value
	NegativeCode = 1 // Sign code for a negative value
	SignCodeSize = 1 // Size of the sign code in bits
)

// MaxCodewordSize is the longest codeword a codebook entry may carry.
const MaxCodewordSize = 32

// Entry is one row of a codebook.
//
// Bits holds the codeword right-justified in its low Size bits. A non-zero
// Value is an unsigned magnitude that is followed by a sign bit in the
// stream. Count == 0 && Value == 0 marks a special codeword whose meaning
// comes from its position in the table.
type Entry struct {
	Size  uint8  // Codeword length in bits (1-32)
	Bits  uint32 // Codeword bits, right-justified
	Count uint32 // Run length
	Value int32  // Run value (unsigned magnitude)
}

// Kind returns how a decoder must treat the entry.
func (e Entry) Kind() Kind {
	return kindOf(e.Count, e.Value)
}

// codeword returns Bits with everything above Size cleared.
func (e Entry) codeword() uint32 {
	if e.Size >= 32 {
		return e.Bits
	}
	return e.Bits & (1<<e.Size - 1)
}

// Kind classifies a decoded symbol.
type Kind uint8

// Symbol kinds.
const (
	KindRun    Kind = iota // Run of zeros, no sign bit
	KindValue              // Non-zero magnitude followed by a sign bit
	KindMarker             // Special codeword, identity in Symbol.Index
)

func kindOf(count uint32, value int32) Kind {
	switch {
	case value != 0:
		return KindValue
	case count == 0:
		return KindMarker
	default:
		return KindRun
	}
}

func (k Kind) String() string {
	switch k {
	case KindRun:
		return "run"
	case KindValue:
		return "value"
	case KindMarker:
		return "marker"
	}
	return "unknown"
}

// Run is the result of decoding one codeword: Count copies of Value.
// Value is signed once the sign bit has been applied.
type Run struct {
	Count uint32 // Run length
	Value int32  // Run value
}

// Symbol is a decoded run together with the index of the codebook entry
// that produced it.
type Symbol struct {
	Run
	Index int // Position of the matched entry in the codebook
}

// Kind returns the kind of the matched entry.
func (s Symbol) Kind() Kind {
	return kindOf(s.Count, s.Value)
}

// IsMarker reports whether the symbol is a special codeword.
func (s Symbol) IsMarker() bool {
	return s.Count == 0 && s.Value == 0
}
