// Package merkle computes the state root over the tracked bundle votes of
// every sidechain: a standard binary Merkle tree over leaf hashes, doubling the last
// leaf at each level that has an odd count, using a plain hasher with no
// domain-separating leaf/node prefix byte.
package merkle

import "github.com/sidechain-labs/scdb/hashing"

// Root computes the Merkle root over leaves using h for node hashing. An
// empty leaf set returns the all-zero hash.
func Root(leaves []hashing.Hash256, h hashing.Provider) hashing.Hash256 {
	if len(leaves) == 0 {
		return hashing.Hash256{}
	}
	if len(leaves) == 1 {
		var pair [64]byte
		copy(pair[:32], leaves[0][:])
		copy(pair[32:], leaves[0][:])
		return h.Sum256(pair[:])
	}

	level := append([]hashing.Hash256(nil), leaves...)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]hashing.Hash256, 0, len(level)/2)
		var pair [64]byte
		for i := 0; i < len(level); i += 2 {
			copy(pair[:32], level[i][:])
			copy(pair[32:], level[i+1][:])
			next = append(next, h.Sum256(pair[:]))
		}
		level = next
	}
	return level[0]
}
