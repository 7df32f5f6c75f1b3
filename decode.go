package vc5

import "fmt"

// Band reports the outcome of DecodeBand.
type Band struct {
	N          int    // Coefficients written to dst
	Marker     Symbol // Marker that ended the band, if Terminated
	Terminated bool   // A marker was decoded before dst was full
}

// DecodeBand expands runs into dst until dst is full or a marker codeword
// is decoded. Each run writes Count copies of its Value.
//
// Markers are consumed and returned in Band.Marker; what they signal is up
// to the caller. A run that does not fit in the rest of dst fails with
// ErrBandOverflow and is left unconsumed, as are runs that fail to decode.
// Coefficients written before an error stay in dst and are counted in N.
func (d *Decoder) DecodeBand(dst []int32) (Band, error) {
	var band Band

	for band.N < len(dst) {
		pos := d.r.Position()
		sym, err := d.Symbol()
		if err != nil {
			return band, err
		}

		if sym.IsMarker() {
			band.Marker = sym
			band.Terminated = true
			return band, nil
		}

		if uint64(sym.Count) > uint64(len(dst)-band.N) {
			if serr := d.r.Seek(pos); serr != nil {
				return band, serr
			}
			return band, fmt.Errorf("%w: run of %d at coefficient %d of %d (bit %d)",
				ErrBandOverflow, sym.Count, band.N, len(dst), pos)
		}

		run := dst[band.N : band.N+int(sym.Count)]
		for i := range run {
			run[i] = sym.Value
		}
		band.N += len(run)
	}

	return band, nil
}
