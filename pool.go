// SPDX-License-Identifier: MIT
// Copyright (c) 2026 archivekit
// Source: github.com/archivekit/zpak

package zpak

import "sync"

// hashIndexPool reuses hashIndex allocations across one-shot encode calls
// and streaming sessions instead of re-allocating per-call state.
var hashIndexPool sync.Map // key: [2]int{hashBits, chainDepth} -> *sync.Pool

// acquireHashIndex gets a zeroed hashIndex sized for (hashBits, chainDepth)
// from the pool, allocating a fresh pool keyed by that shape on first use.
func acquireHashIndex(hashBits, chainDepth int) *hashIndex {
	key := [2]int{hashBits, chainDepth}
	poolAny, _ := hashIndexPool.LoadOrStore(key, &sync.Pool{
		New: func() any { return newHashIndex(hashBits, chainDepth) },
	})
	pool := poolAny.(*sync.Pool)

	h := pool.Get().(*hashIndex)
	h.reset()
	return h
}

// releaseHashIndex returns a hashIndex to its shape-keyed pool. Scoped
// acquisition: every caller must release on all exit paths, including
// error returns, so intermediate hash tables do not outlive their call.
func releaseHashIndex(h *hashIndex) {
	if h == nil {
		return
	}

	key := [2]int{int(msbPosition(h.mask + 1)), h.depth}
	poolAny, ok := hashIndexPool.Load(key)
	if !ok {
		return
	}
	poolAny.(*sync.Pool).Put(h)
}

// msbPosition returns the bit position of the single set bit in a power of
// two (used to recover hashBits from a bucket-count mask+1).
func msbPosition(powerOfTwo uint32) int {
	n := 0
	for powerOfTwo > 1 {
		powerOfTwo >>= 1
		n++
	}
	return n
}
