package vlc

import "fmt"

// node is a binary trie node keyed by codeword bits, MSB first.
type node struct {
	child [2]int32 // Child node per bit value, 0 if absent (root is never a child)
	entry int32    // Entry index for leaves, -1 for internal nodes
}

// Codebook is an immutable, prefix-free table of codewords.
//
// A Codebook is built once and never modified, so any number of decoders
// may share it concurrently.
type Codebook struct {
	entries []Entry
	nodes   []node
	markers []int
	minSize uint8
	maxSize uint8
}

// NewCodebook builds a codebook from a table and its declared length.
//
// The entries are copied. Construction fails with ErrMalformedCodebook if
// length does not match len(entries), the table is empty, an entry size is
// outside 1-32, two entries share a codeword, or one codeword is a prefix
// of another.
func NewCodebook(length uint32, entries []Entry) (*Codebook, error) {
	if uint64(length) != uint64(len(entries)) {
		return nil, fmt.Errorf("%w: declared length %d, have %d entries",
			ErrMalformedCodebook, length, len(entries))
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrMalformedCodebook)
	}

	cb := &Codebook{
		entries: make([]Entry, len(entries)),
		nodes:   make([]node, 1, 2*len(entries)),
		minSize: MaxCodewordSize,
	}
	cb.nodes[0] = node{entry: -1}

	for i, e := range entries {
		if e.Size == 0 || e.Size > MaxCodewordSize {
			return nil, fmt.Errorf("%w: entry %d has size %d",
				ErrMalformedCodebook, i, e.Size)
		}
		e.Bits = e.codeword()
		cb.entries[i] = e

		if err := cb.insert(i); err != nil {
			return nil, err
		}

		cb.minSize = min(cb.minSize, e.Size)
		cb.maxSize = max(cb.maxSize, e.Size)
		if e.Kind() == KindMarker {
			cb.markers = append(cb.markers, i)
		}
	}

	return cb, nil
}

// insert adds entry i to the trie. Any conflict with an entry already in
// the trie breaks the prefix-free property.
func (cb *Codebook) insert(i int) error {
	e := cb.entries[i]
	cur := int32(0)

	for bit := int(e.Size) - 1; bit >= 0; bit-- {
		if other := cb.nodes[cur].entry; other >= 0 {
			return cb.conflict(int(other), i)
		}

		b := (e.Bits >> uint(bit)) & 1
		next := cb.nodes[cur].child[b]
		if next == 0 {
			next = int32(len(cb.nodes))
			cb.nodes = append(cb.nodes, node{entry: -1})
			cb.nodes[cur].child[b] = next
		}
		cur = next
	}

	n := &cb.nodes[cur]
	if n.entry >= 0 {
		return fmt.Errorf("%w: entries %d and %d share codeword %0*b",
			ErrMalformedCodebook, n.entry, i, int(e.Size), e.Bits)
	}
	if n.child[0] != 0 || n.child[1] != 0 {
		return fmt.Errorf("%w: codeword %0*b of entry %d is a prefix of another entry",
			ErrMalformedCodebook, int(e.Size), e.Bits, i)
	}
	n.entry = int32(i)
	return nil
}

func (cb *Codebook) conflict(prefix, i int) error {
	p := cb.entries[prefix]
	return fmt.Errorf("%w: codeword %0*b of entry %d is a prefix of entry %d",
		ErrMalformedCodebook, int(p.Size), p.Bits, prefix, i)
}

// Len returns the number of entries.
func (cb *Codebook) Len() int {
	return len(cb.entries)
}

// Entry returns the i-th entry. Bits is masked to Size.
func (cb *Codebook) Entry(i int) Entry {
	return cb.entries[i]
}

// MaxSize returns the length of the longest codeword.
func (cb *Codebook) MaxSize() int {
	return int(cb.maxSize)
}

// MinSize returns the length of the shortest codeword.
func (cb *Codebook) MinSize() int {
	return int(cb.minSize)
}

// Markers returns the indices of the marker entries in table order.
func (cb *Codebook) Markers() []int {
	out := make([]int, len(cb.markers))
	copy(out, cb.markers)
	return out
}

// Lookup returns the index of the entry with the given codeword.
// Bits above size are ignored.
func (cb *Codebook) Lookup(size int, bits uint32) (int, bool) {
	if size <= 0 || size > int(cb.maxSize) {
		return 0, false
	}

	cur := int32(0)
	for bit := size - 1; bit >= 0; bit-- {
		cur = cb.nodes[cur].child[(bits>>uint(bit))&1]
		if cur == 0 {
			return 0, false
		}
		if e := cb.nodes[cur].entry; e >= 0 {
			if bit != 0 {
				return 0, false
			}
			return int(e), true
		}
	}
	return 0, false
}
