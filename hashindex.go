// SPDX-License-Identifier: MIT
// Copyright (c) 2026 archivekit
// Source: github.com/archivekit/zpak

package zpak

// hashSlotEmpty is the sentinel value for "no candidate". Buckets track
// their emptiness through count, so the table never stores this value.
const hashSlotEmpty int32 = -1

// hashIndex maps 3-4 byte input prefixes to candidate absolute positions.
// Each bucket holds up to chainDepth candidates (most recent first), so the
// encoder can honor Config.MaxChainLength by walking a bounded multi-slot
// chain instead of consulting only the newest candidate.
type hashIndex struct {
	mask  uint32
	depth int
	slots [][]int32 // slots[bucket] is a ring of up to depth candidate positions
	head  []int     // head[bucket] is the index of the most-recently-written slot
	count []int     // count[bucket] is how many valid entries slots[bucket] holds
}

// newHashIndex allocates a hash index with 2^hashBits buckets, each holding
// up to chainDepth candidates.
func newHashIndex(hashBits, chainDepth int) *hashIndex {
	size := 1 << hashBits
	if chainDepth < 1 {
		chainDepth = 1
	}

	h := &hashIndex{
		mask:  uint32(size - 1),
		depth: chainDepth,
		slots: make([][]int32, size),
		head:  make([]int, size),
		count: make([]int, size),
	}
	for i := range h.slots {
		h.slots[i] = make([]int32, chainDepth)
	}
	return h
}

// reset clears every bucket without reallocating, for pooled reuse.
func (h *hashIndex) reset() {
	for i := range h.count {
		h.count[i] = 0
		h.head[i] = 0
	}
}

// hashPrefix computes the rolling hash of a 3- or 4-byte prefix:
// h = ((...((b0*31+b1)*31+b2)...)) mod 2^hashBits, with explicit 32-bit
// wrapping arithmetic.
func hashPrefix(b []byte, mask uint32) uint32 {
	var h uint32
	n := len(b)
	if n > 4 {
		n = 4
	}
	for i := 0; i < n; i++ {
		h = h*31 + uint32(b[i])
	}
	return h & mask
}

// bucket returns the bucket index for a 3-4 byte prefix.
func (h *hashIndex) bucket(prefix []byte) uint32 {
	return hashPrefix(prefix, h.mask)
}

// candidates returns the candidate positions currently stored in a bucket,
// most-recently-inserted first, bounded by the configured chain depth.
func (h *hashIndex) candidates(b uint32) []int32 {
	n := h.count[b]
	if n == 0 {
		return nil
	}

	out := make([]int32, 0, n)
	idx := h.head[b]
	for i := 0; i < n; i++ {
		out = append(out, h.slots[b][idx])
		idx--
		if idx < 0 {
			idx = h.depth - 1
		}
	}
	return out
}

// insert records pos as the newest candidate for bucket b, evicting the
// oldest candidate once the bucket is at its configured depth.
func (h *hashIndex) insert(b uint32, pos int32) {
	h.head[b] = (h.head[b] + 1) % h.depth
	h.slots[b][h.head[b]] = pos
	if h.count[b] < h.depth {
		h.count[b]++
	}
}

// ageBelow resets every bucket to contain no candidates below basePos,
// so no entry references a position now outside the window. This
// is invoked on every streaming window slide; for a one-shot encode, the
// whole index is simply discarded instead.
func (h *hashIndex) ageBelow(basePos int32) {
	for b := range h.slots {
		n := h.count[b]
		if n == 0 {
			continue
		}

		kept := make([]int32, 0, n)
		idx := h.head[b]
		for i := 0; i < n; i++ {
			pos := h.slots[b][idx]
			if pos >= basePos {
				kept = append(kept, pos)
			}
			idx--
			if idx < 0 {
				idx = h.depth - 1
			}
		}

		h.count[b] = 0
		h.head[b] = 0
		// Reinsert oldest-to-newest so head/ordering semantics are preserved.
		for i := len(kept) - 1; i >= 0; i-- {
			h.insert(uint32(b), kept[i])
		}
	}
}
