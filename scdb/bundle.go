package scdb

import (
	"github.com/sidechain-labs/scdb/bundleindex"
	"github.com/sidechain-labs/scdb/hashing"
	"github.com/sidechain-labs/scdb/sidechain"
)

// AddBundle admits tx as a new candidate withdrawal bundle on id, using
// tx.TxID as the bundle id. It fails (returns false, no state change) if
// id is not a recognized sidechain, tx is already cached
// (HaveWTJoinCached), or id's index is already full (CapacityReject).
//
// Unlike Update's per-block ApplyTransition, this does not run the global
// decrement pass over existing bundles: registering one new candidate
// only checks index capacity before inserting, so it never ticks down
// every other bundle's blocks_left as a side effect.
func (s *SCDB) AddBundle(id sidechain.ID, tx Transaction) bool {
	if !sidechain.IsValid(id) {
		return false
	}
	if s.haveWTJoinCached(tx.TxID) {
		return false
	}

	idx := s.indexFor(id)
	if idx == nil {
		return false
	}
	if idx.IsFull() {
		return false
	}

	vote := bundleindex.Vote{Sidechain: id, BundleID: tx.TxID, BlocksLeft: sidechain.Tau(id), WorkScore: 0}
	idx.Insert(vote)

	s.bundleTxCache = append(s.bundleTxCache, bundleRecord{Sidechain: id, Tx: tx})
	return true
}

// HaveWTJoinCached reports whether txid is already cached as a known
// bundle transaction, on any sidechain — this dedup is global, not
// per-sidechain.
func (s *SCDB) HaveWTJoinCached(txid hashing.Hash256) bool {
	return s.haveWTJoinCached(txid)
}

func (s *SCDB) haveWTJoinCached(txid hashing.Hash256) bool {
	for _, b := range s.bundleTxCache {
		if b.Tx.TxID == txid {
			return true
		}
	}
	return false
}
