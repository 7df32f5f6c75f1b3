// Package vc5 decodes the run-length variable-length codes used for
// wavelet coefficient bands in VC-5 bitstreams.
//
// A codebook is an immutable, prefix-free table of codewords. Each
// codeword stands for a run of zeros, an unsigned magnitude (followed in
// the stream by one sign bit), or a marker whose meaning is decided by the
// surrounding codec.
//
// # Basic Usage
//
//	cb, err := vc5.ReadCodebook(tableFile)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dec := vc5.NewDecoder(cb)
//	dec.Reset(bandData)
//	for {
//	    run, err := dec.Run()
//	    if err != nil {
//	        break
//	    }
//	    // Expand run.Count copies of run.Value...
//	}
//
// Whole bands can be expanded with Decoder.DecodeBand, which stops at the
// first marker codeword.
//
// # Errors
//
// Decoding returns ErrBitstreamExhausted when the input ends inside a
// codeword or before its sign bit, and ErrUnmatchedCodeword when the bits
// match no codeword. Neither consumes input, so a caller that obtains more
// data can Seek back to the saved Position and retry. ErrorCode maps these
// errors to numeric codes.
//
// # Thread Safety
//
// Codebooks are never modified after construction and may be shared by
// any number of goroutines. Decoder instances are NOT safe for concurrent
// use; each goroutine should have its own Decoder.
package vc5
