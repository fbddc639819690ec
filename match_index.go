// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzutf8

package lzutf8

import "sync"

// matchIndex maps a 4-byte prefix to the ascending list of input positions where it
// was seen. It is working state of a single Compress call.
type matchIndex struct {
	buckets map[uint32][]int
}

// matchIndexPool is a pool of match indexes.
var matchIndexPool = sync.Pool{
	New: func() any {
		return &matchIndex{buckets: make(map[uint32][]int)}
	},
}

// acquireMatchIndex acquires an empty match index from the pool.
func acquireMatchIndex() *matchIndex {
	idx := matchIndexPool.Get().(*matchIndex)
	clear(idx.buckets)
	return idx
}

// releaseMatchIndex releases a match index to the pool.
func releaseMatchIndex(idx *matchIndex) {
	if idx == nil {
		return
	}

	clear(idx.buckets)
	matchIndexPool.Put(idx)
}

// matchKey packs the 4 bytes at the start of b. len(b) must be at least keyLen.
func matchKey(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// candidates returns the positions recorded for key, oldest first. The slice is only
// valid until the next insert for the same key.
func (idx *matchIndex) candidates(key uint32) []int {
	return idx.buckets[key]
}

// insert records pos under key and drops entries that are MaxMatchDistance or more
// behind pos. Positions only grow, so stale entries are always at the front.
func (idx *matchIndex) insert(key uint32, pos int) {
	bucket := append(idx.buckets[key], pos)

	stale := 0
	for stale < len(bucket) && pos-bucket[stale] >= MaxMatchDistance {
		stale++
	}

	if stale > 0 {
		bucket = bucket[:copy(bucket, bucket[stale:])]
	}

	idx.buckets[key] = bucket
}
