package scdb

import (
	"github.com/sidechain-labs/scdb/bundleindex"
	"github.com/sidechain-labs/scdb/sidechain"
)

// ApplyTransition runs a global decrement pass over every non-null slot
// (exactly once, regardless of how many votes are supplied), followed by
// a per-vote apply pass that accepts overwrites within a ±1 work-score
// delta of the existing record, or admits a brand new bundle when the
// index has room and the vote is a fresh zero-score entry. It returns
// false only when some vote names an unrecognized sidechain — in that
// case no part of the transition, including the decrement pass, is
// applied.
func (s *SCDB) ApplyTransition(votes []bundleindex.Vote) bool {
	for _, v := range votes {
		if !sidechain.IsValid(v.Sidechain) {
			return false
		}
	}
	applyTransition(s.indexes, votes)
	return true
}

// applyTransition runs the two-pass algorithm against an arbitrary index
// slice, so the MT synchronizer can run it against a scratch clone.
func applyTransition(indexes []bundleindex.Index, votes []bundleindex.Vote) {
	for i := range indexes {
		decrementAll(&indexes[i])
	}

	for _, v := range votes {
		idx := slotOf(v.Sidechain)
		if idx < 0 {
			continue
		}
		applyVote(&indexes[idx], v)
	}
}

func decrementAll(idx *bundleindex.Index) {
	for _, v := range idx.NonNull() {
		if v.BlocksLeft > 0 {
			v.BlocksLeft--
		}
		idx.Insert(v)
	}
}

func applyVote(idx *bundleindex.Index, v bundleindex.Vote) {
	if existing, ok := idx.Get(v.BundleID); ok {
		if scoreDelta(existing.WorkScore, v.WorkScore) {
			idx.Insert(v)
		}
		return
	}

	if idx.IsFull() {
		return
	}
	tau := sidechain.Tau(v.Sidechain)
	if v.WorkScore == 0 && v.BlocksLeft == tau {
		idx.Insert(v)
	}
}

// scoreDelta reports whether newScore is within {old, old+1, old-1} of
// oldScore: a work score may move by at most one per transition.
func scoreDelta(oldScore, newScore uint16) bool {
	if newScore == oldScore {
		return true
	}
	if newScore == oldScore+1 {
		return true
	}
	if oldScore > 0 && newScore == oldScore-1 {
		return true
	}
	return false
}
