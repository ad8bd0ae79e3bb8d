// Package ratchet implements the bounded BMM linking ratchet: an ordered
// FIFO of critical-hash entries with a companion hash-to-height multimap
// for O(1) lookup, eviction-synchronized so that popping the oldest FIFO
// entry removes exactly the one multimap entry it added — not every entry
// sharing that hash. An ordered bounded set with random-access lookup:
// a ring-ordered slice paired with a map of per-hash occurrence lists.
package ratchet

import "github.com/sidechain-labs/scdb/hashing"

type entry struct {
	hash   hashing.Hash256
	height int32
}

// Ratchet is the BMM linking data structure. Construct with New: the zero
// value has no multimap and no capacity, so it is not ready to use.
type Ratchet struct {
	fifo     []entry
	byHash   map[hashing.Hash256][]int32
	capacity int
}

// New returns a Ratchet bounded at capacity entries.
func New(capacity int) *Ratchet {
	return &Ratchet{
		byHash:   make(map[hashing.Hash256][]int32),
		capacity: capacity,
	}
}

// TryAppend accepts hash at blockNumber iff the ratchet is empty or
// blockNumber is at most one past the height of the most recently appended
// hash (the "pairwise-within-1" ratchet property — heights are not required
// to be globally monotonic). On acceptance it appends to the FIFO and the
// multimap, then evicts the oldest entry if capacity is now exceeded.
func (r *Ratchet) TryAppend(hash hashing.Hash256, blockNumber int32) bool {
	if len(r.fifo) > 0 {
		last := r.fifo[len(r.fifo)-1]
		if blockNumber-last.height > 1 {
			return false
		}
	}

	r.fifo = append(r.fifo, entry{hash: hash, height: blockNumber})
	r.byHash[hash] = append(r.byHash[hash], blockNumber)

	if len(r.fifo) > r.capacity {
		r.evictFront()
	}
	return true
}

// evictFront pops the oldest FIFO entry and removes the single matching
// occurrence from the multimap, preserving any other entries for the same
// hash — duplicate hashes with distinct heights are legal.
func (r *Ratchet) evictFront() {
	if len(r.fifo) == 0 {
		return
	}
	head := r.fifo[0]
	r.fifo = r.fifo[1:]

	heights := r.byHash[head.hash]
	for i, h := range heights {
		if h == head.height {
			heights = append(heights[:i], heights[i+1:]...)
			break
		}
	}
	if len(heights) == 0 {
		delete(r.byHash, head.hash)
	} else {
		r.byHash[head.hash] = heights
	}
}

// Len returns the current FIFO length.
func (r *Ratchet) Len() int {
	return len(r.fifo)
}

// LinkingData returns a read-only snapshot of the hash-to-height multimap,
// the data an OP_BRIBE script needs to validate against.
func (r *Ratchet) LinkingData() map[hashing.Hash256][]int32 {
	out := make(map[hashing.Hash256][]int32, len(r.byHash))
	for h, heights := range r.byHash {
		out[h] = append([]int32(nil), heights...)
	}
	return out
}

// Contains reports whether height is currently recorded for hash.
func (r *Ratchet) Contains(hash hashing.Hash256, height int32) bool {
	for _, h := range r.byHash[hash] {
		if h == height {
			return true
		}
	}
	return false
}

// Reset empties the ratchet.
func (r *Ratchet) Reset() {
	r.fifo = nil
	r.byHash = make(map[hashing.Hash256][]int32)
}
