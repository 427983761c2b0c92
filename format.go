package lzss

// Container format constants.
const (
	HeaderSize = 8 // Bytes in the little-endian original-size header.
	FlagBits   = 8 // Items covered by one flag byte.

	hashKeyLen    = 3   // Bytes of input hashed into the chain table key.
	maxChainSteps = 256 // Candidates examined per search before giving up.
	minTableSize  = 1 << 10
	maxTableSize  = 1 << 16

	// MinMatchFloor is the smallest MinMatch value the hash-chain engine
	// can use: below 3 bytes there is nothing to key the chain table on.
	MinMatchFloor = 3
	// MaxMinMatch is the largest MinMatch value the 1-byte length code
	// can support together with the 254-length headroom described by
	// the container format (length = code + MinMatch, code in 0..254).
	MaxMinMatch = 257
	// maxMatchExtra is the largest length code value the encoder emits,
	// capped at 254, not 255, to leave MinMatch headroom up to 257.
	maxMatchExtra = 254
	// MaxWindow is the largest distance a 16-bit little-endian field can
	// encode.
	MaxWindow = 65535
)
