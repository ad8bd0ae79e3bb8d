package scdb

import (
	"encoding/binary"

	"github.com/sidechain-labs/scdb/bundleindex"
	"github.com/sidechain-labs/scdb/hashing"
	"github.com/sidechain-labs/scdb/merkle"
	"github.com/sidechain-labs/scdb/sidechain"
)

// voteHash is the canonical per-vote leaf hash:
// sidechain(1) || bundle_id(32) || blocks_left(LE16) || work_score(LE16).
func voteHash(h hashing.Provider, v bundleindex.Vote) hashing.Hash256 {
	var buf [1 + 32 + 2 + 2]byte
	buf[0] = byte(v.Sidechain)
	copy(buf[1:33], v.BundleID[:])
	binary.LittleEndian.PutUint16(buf[33:35], v.BlocksLeft)
	binary.LittleEndian.PutUint16(buf[35:37], v.WorkScore)
	return h.Sum256(buf[:])
}

// leavesOf builds the ordered leaf set: for each sidechain in enumeration
// order, for each non-null slot in its index in slot order.
func leavesOf(hasher hashing.Provider, indexes []bundleindex.Index) []hashing.Hash256 {
	var out []hashing.Hash256
	for i := range sidechain.Valid {
		for _, v := range indexes[i].NonNull() {
			out = append(out, voteHash(hasher, v))
		}
	}
	return out
}

// Root returns the current state Merkle root over every tracked bundle
// vote.
func (s *SCDB) Root() hashing.Hash256 {
	return merkle.Root(leavesOf(s.hasher, s.indexes), s.hasher)
}

// RootIfApplied computes the root that would result from applying votes to
// a scratch clone of the current indexes, without mutating live state.
func (s *SCDB) RootIfApplied(votes []bundleindex.Vote) hashing.Hash256 {
	clone := s.cloneIndexes()
	applyTransition(clone, votes)
	return merkle.Root(leavesOf(s.hasher, clone), s.hasher)
}

func (s *SCDB) cloneIndexes() []bundleindex.Index {
	clone := make([]bundleindex.Index, len(s.indexes))
	for i := range s.indexes {
		clone[i] = s.indexes[i].Clone()
	}
	return clone
}
