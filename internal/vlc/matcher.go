package vlc

// match finds the entry whose codeword prefixes the next bits of c
// without consuming anything.
//
// At most MaxSize bits are looked at, fewer if the stream is shorter. The
// trie walk stops at the first leaf; a prefix-free table guarantees it is
// the only entry that can match.
func match(c Cursor, cb *Codebook) (int, error) {
	n := min(cb.MaxSize(), c.BitsRemaining())
	n = max(n, 0)
	window := c.ShowBits(uint(n))

	cur := int32(0)
	for bit := n - 1; bit >= 0; bit-- {
		cur = cb.nodes[cur].child[(window>>uint(bit))&1]
		if cur == 0 {
			return 0, &DecodeError{
				Offset: c.Position(),
				Bits:   window >> uint(bit),
				Len:    n - bit,
				Err:    ErrUnmatchedCodeword,
			}
		}
		if e := cb.nodes[cur].entry; e >= 0 {
			return int(e), nil
		}
	}

	// Every available bit lies on the path to a longer codeword
	return 0, &DecodeError{
		Offset: c.Position(),
		Bits:   window,
		Len:    n,
		Err:    ErrBitstreamExhausted,
	}
}

// GetRlv decodes one codeword and returns its run as stored in the
// codebook, without reading a sign bit.
//
// On success exactly the codeword is consumed. On failure the cursor is
// left untouched and the error is a *DecodeError wrapping
// ErrUnmatchedCodeword or ErrBitstreamExhausted.
func GetRlv(c Cursor, cb *Codebook) (Symbol, error) {
	i, err := match(c, cb)
	if err != nil {
		return Symbol{}, err
	}

	e := cb.entries[i]
	c.FlushBits(uint(e.Size))
	return Symbol{Run: Run{Count: e.Count, Value: e.Value}, Index: i}, nil
}
