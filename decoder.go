package lzss

import "encoding/binary"

// Decompress decodes a container produced by Compress with a Config whose
// MinMatch matches the one used to encode it. Window is not consulted:
// the distance field is self-describing, and only MinMatch is needed to
// turn a length code back into a length.
func Decompress(cfg Config, container []byte) ([]byte, error) {
	if len(container) < HeaderSize {
		return nil, ErrInvalidInput
	}

	n := binary.LittleEndian.Uint64(container[:HeaderSize])
	minMatch := int(cfg.minMatch)

	out := make([]byte, 0, n)
	c := HeaderSize

	for uint64(len(out)) < n {
		if c >= len(container) {
			return nil, ErrTruncated
		}
		flag := container[c]
		c++

		for bit := 0; bit < FlagBits && uint64(len(out)) < n; bit++ {
			if (flag>>uint(bit))&1 == 0 {
				if c >= len(container) {
					return nil, ErrTruncated
				}
				out = append(out, container[c])
				c++
				continue
			}

			if c+3 > len(container) {
				return nil, ErrTruncated
			}
			dist := int(container[c]) | int(container[c+1])<<8
			length := int(container[c+2]) + minMatch
			c += 3

			if dist < 1 || dist > len(out) {
				return nil, ErrInvalidReference
			}

			// Copy byte-by-byte, not with copy(), so a self-overlapping
			// reference (dist < length) replicates the recent suffix: each
			// byte must be visible to the read that follows it.
			start := len(out) - dist
			need := length
			if remaining := int(n) - len(out); need > remaining {
				need = remaining
			}
			for k := 0; k < need; k++ {
				out = append(out, out[start+k])
			}
		}
	}

	if uint64(len(out)) != n {
		return nil, ErrTruncated
	}

	return out, nil
}
