/*
Package lzss implements a parameter-configurable LZSS codec: pure,
single-shot Compress and Decompress functions over in-memory byte
buffers. There is no streaming API and no multi-block framing; a
single call compresses or decompresses one whole buffer.

Container format: an 8-byte little-endian original-size header
followed by a token stream. Tokens are grouped 8 at a time behind a
flag byte; a set bit marks a 3-byte back-reference (2-byte LE
distance, 1-byte length code), a clear bit marks a 1-byte literal.
Distance is measured backward from the current output position and
is bounded by Config.Window; length is the length code plus
Config.MinMatch.

The encoder searches for matches with a chained hash table over
3-byte prefixes (see chain.go), bounded by Config.Window and a fixed
chain-walk cap; ties are broken by keeping the closest candidate,
which the most-recent-first chain order gives for free.

# Examples

Round-trip with the default configuration:

	enc, err := lzss.Compress(lzss.Default(), data)
	if err != nil {
		return err
	}
	dec, err := lzss.Decompress(lzss.Default(), enc)
	if err != nil {
		return err
	}
	// dec equals data

Custom window and minimum match length; both sides must agree on
MinMatch to recover the length code, and Window only affects how far
back the encoder is willing to search:

	cfg, err := lzss.New(16384, 4)
	if err != nil {
		return err
	}
	enc, _ := lzss.Compress(cfg, data)
	dec, _ := lzss.Decompress(cfg, enc)

Recovering the original size without decompressing, and sizing an
output buffer before compressing:

	n := lzss.PeekOriginalSize(enc)
	bound := lzss.MaxCompressedSize(uint64(len(data)))
*/
package lzss
