package lzss

// Compress encodes src into the container format described in doc.go,
// searching for back-references with a chained hash table bounded by
// cfg.Window. It succeeds for every input; the only error it can return is
// ErrInternal, which indicates the implementation's own size bound was
// wrong rather than anything about src.
func Compress(cfg Config, src []byte) ([]byte, error) {
	n := uint64(len(src))
	out := make([]byte, 0, MaxCompressedSize(n))
	out = writeHeader(out, n)

	if len(src) == 0 {
		return out, nil
	}

	chain := newMatchChain(cfg.window, len(src))
	minMatch := int(cfg.minMatch)
	maxLenCap := minMatch + maxMatchExtra

	var flagByte byte
	bitCount := 0
	flagPos := -1

	writeFlags := func() {
		if flagPos >= 0 {
			out[flagPos] = flagByte
		}
		flagByte = 0
		bitCount = 0
	}
	startChunk := func() {
		flagPos = len(out)
		out = append(out, 0)
	}

	startChunk()

	p := 0
	for p < len(src) {
		maxLen := maxLenCap
		if rem := len(src) - p; rem < maxLen {
			maxLen = rem
		}

		dist, length := chain.search(src, p, minMatch, maxLen)

		if length >= minMatch {
			// Back-reference: LE 16-bit distance, then length-minMatch.
			flagByte |= 1 << uint(bitCount)
			out = append(out, byte(dist), byte(dist>>8), byte(length-minMatch))

			for q := p; q < p+length; q++ {
				chain.insert(src, q)
			}
			p += length
		} else {
			out = append(out, src[p])
			chain.insert(src, p)
			p++
		}

		bitCount++
		if bitCount == FlagBits {
			writeFlags()
			if p < len(src) {
				startChunk()
			}
		}
	}

	if bitCount > 0 {
		writeFlags()
	}

	if uint64(len(out)) > MaxCompressedSize(n) {
		return nil, ErrInternal
	}

	return out, nil
}
