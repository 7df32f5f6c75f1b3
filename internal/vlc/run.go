package vlc

// DecodeSymbol decodes one codeword and, for a non-zero magnitude, the
// sign bit that follows it.
//
// Runs and markers consume only their codeword. Magnitudes consume the
// codeword plus SignCodeSize bits; NegativeCode negates the value. If the
// sign bit is missing the call fails with ErrBitstreamExhausted and
// nothing is consumed.
func DecodeSymbol(c Cursor, cb *Codebook) (Symbol, error) {
	i, err := match(c, cb)
	if err != nil {
		return Symbol{}, err
	}

	e := cb.entries[i]
	sym := Symbol{Run: Run{Count: e.Count, Value: e.Value}, Index: i}
	if e.Value == 0 {
		c.FlushBits(uint(e.Size))
		return sym, nil
	}

	if c.BitsRemaining() < int(e.Size)+SignCodeSize {
		return Symbol{}, &DecodeError{
			Offset: c.Position(),
			Bits:   e.Bits,
			Len:    int(e.Size),
			Err:    ErrBitstreamExhausted,
		}
	}

	c.FlushBits(uint(e.Size))
	if c.Get1Bit() == NegativeCode {
		sym.Value = -sym.Value
	}
	return sym, nil
}

// GetRun decodes one signed run. See DecodeSymbol.
func GetRun(c Cursor, cb *Codebook) (Run, error) {
	sym, err := DecodeSymbol(c, cb)
	if err != nil {
		return Run{}, err
	}
	return sym.Run, nil
}
