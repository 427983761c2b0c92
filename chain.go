package lzss

// matchChain is a chained hash table over 3-byte prefixes of the input,
// used by the encoder to find the longest recent match within a position's
// sliding window. It is the head/prev array representation suggested for a
// conforming port: head holds, per hash slot, the most-recently inserted
// position; prev holds, per position, the previous position that hashed to
// the same slot. Both arrays are local to one Compress call.
type matchChain struct {
	window    uint32
	tableMask uint32
	head      []int32
	prev      []int32
}

// newMatchChain allocates a chain sized for an input of inputLen bytes and
// a search window of window bytes. Table size is the next power of two of
// 4*window, clamped to [minTableSize, maxTableSize] so memory use stays
// predictable regardless of how large window is configured.
func newMatchChain(window uint32, inputLen int) *matchChain {
	tableSize := nextPow2(4 * window)
	if tableSize < minTableSize {
		tableSize = minTableSize
	}
	if tableSize > maxTableSize {
		tableSize = maxTableSize
	}

	head := make([]int32, tableSize)
	for i := range head {
		head[i] = -1
	}

	return &matchChain{
		window:    window,
		tableMask: tableSize - 1,
		head:      head,
		prev:      make([]int32, inputLen),
	}
}

func nextPow2(v uint32) uint32 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	return v + 1
}

// hash3 is an FNV-1a hash of a 3-byte key, folded into the table's bits by
// the caller via tableMask.
func hash3(a, b, c byte) uint32 {
	const offsetBasis, prime = 2166136261, 16777619
	h := uint32(offsetBasis)
	h = (h ^ uint32(a)) * prime
	h = (h ^ uint32(b)) * prime
	h = (h ^ uint32(c)) * prime
	return h
}

// insert records position p, whose 3-byte prefix is input[p:p+3], at the
// head of its chain. Positions within 3 bytes of the end of input are not
// keyable and are silently skipped.
func (m *matchChain) insert(input []byte, p int) {
	if p+hashKeyLen > len(input) {
		return
	}
	key := hash3(input[p], input[p+1], input[p+2]) & m.tableMask
	m.prev[p] = m.head[key]
	m.head[key] = int32(p)
}

// search walks the chain for position p's 3-byte key, most-recent first,
// stopping after maxChainSteps candidates or once a candidate falls outside
// window bytes of p (chain entries only get older, so that is also when to
// give up). It returns the longest match of at least minMatch bytes, or
// (0, 0) if none qualifies. Equal-length candidates keep the first (and so
// closest) one found, matching the tie-break the container format assumes.
func (m *matchChain) search(input []byte, p, minMatch, maxLen int) (distance, length int) {
	if p+hashKeyLen > len(input) {
		return 0, 0
	}

	key := hash3(input[p], input[p+1], input[p+2]) & m.tableMask
	candidate := m.head[key]

	bestLen, bestDist := 0, 0
	for steps := 0; candidate >= 0 && steps < maxChainSteps; steps++ {
		q := int(candidate)
		dist := p - q
		if dist > int(m.window) {
			break
		}

		if l := matchLength(input, q, p, maxLen); l > bestLen {
			bestLen, bestDist = l, dist
			if bestLen >= maxLen {
				break
			}
		}

		candidate = m.prev[q]
	}

	if bestLen < minMatch {
		return 0, 0
	}
	return bestDist, bestLen
}

// matchLength returns how many bytes starting at q and p agree, capped at
// maxLen. Callers guarantee q < p <= len(input)-maxLen, so this never reads
// past len(input).
func matchLength(input []byte, q, p, maxLen int) int {
	l := 0
	for l < maxLen && input[q+l] == input[p+l] {
		l++
	}
	return l
}
