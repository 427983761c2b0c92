package lzss

import "encoding/binary"

// writeHeader appends the 8-byte little-endian original-size header to out.
func writeHeader(out []byte, n uint64) []byte {
	var buf [HeaderSize]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	return append(out, buf[:]...)
}

// PeekOriginalSize reads the original-size header without decompressing.
// It returns 0 if b is shorter than the header.
func PeekOriginalSize(b []byte) uint64 {
	if len(b) < HeaderSize {
		return 0
	}
	return binary.LittleEndian.Uint64(b[:HeaderSize])
}

// MaxCompressedSize returns an upper bound on the size of Compress's output
// for an input of n bytes: header, plus the all-literal worst case, plus
// one flag byte per 8 literals, plus slack.
func MaxCompressedSize(n uint64) uint64 {
	return HeaderSize + n + (n+7)/8 + 16
}
