// Package bundleindex implements the per-sidechain fixed-capacity slot
// table of withdrawal-bundle vote records: a plain array scanned
// linearly, since MaxBundlesPerSidechain is tiny (3) and correctness, not
// throughput, is what matters for a consensus-critical structure.
package bundleindex

import (
	"github.com/sidechain-labs/scdb/hashing"
	"github.com/sidechain-labs/scdb/sidechain"
)

// Vote is one candidate withdrawal bundle's voting record. A null vote has
// a zeroed BundleID.
type Vote struct {
	Sidechain  sidechain.ID
	BundleID   hashing.Hash256
	BlocksLeft uint16
	WorkScore  uint16
}

// IsNull reports whether v is a null (empty) slot.
func (v Vote) IsNull() bool {
	return v.BundleID.IsZero()
}

// Index is a fixed-capacity table of Vote slots for one sidechain.
type Index struct {
	slots [sidechain.MaxBundlesPerSidechain]Vote
}

// Get linearly scans the slots for bundleID, returning the matching slot
// and whether it was found.
func (idx *Index) Get(bundleID hashing.Hash256) (Vote, bool) {
	for _, s := range idx.slots {
		if s.IsNull() {
			continue
		}
		if s.BundleID == bundleID {
			return s, true
		}
	}
	return Vote{}, false
}

// Insert overwrites the slot already holding vote.BundleID, or else writes
// into the first null slot. It reports false if no slot was available and
// none already held this bundle — callers (the transition engine) are
// responsible for checking IsFull before relying on this path.
func (idx *Index) Insert(vote Vote) bool {
	for i := range idx.slots {
		if idx.slots[i].BundleID == vote.BundleID && !idx.slots[i].IsNull() {
			idx.slots[i] = vote
			return true
		}
	}
	for i := range idx.slots {
		if idx.slots[i].IsNull() {
			idx.slots[i] = vote
			return true
		}
	}
	return false
}

// ClearAll nulls every slot.
func (idx *Index) ClearAll() {
	idx.slots = [sidechain.MaxBundlesPerSidechain]Vote{}
}

// IsFull reports whether every slot is non-null.
func (idx *Index) IsFull() bool {
	for _, s := range idx.slots {
		if s.IsNull() {
			return false
		}
	}
	return true
}

// IsPopulated reports whether at least one slot is non-null.
func (idx *Index) IsPopulated() bool {
	for _, s := range idx.slots {
		if !s.IsNull() {
			return true
		}
	}
	return false
}

// Slots returns the raw backing slots in table order, including null
// entries. Callers that only want live votes should use NonNull.
func (idx *Index) Slots() [sidechain.MaxBundlesPerSidechain]Vote {
	return idx.slots
}

// NonNull returns the non-null votes in slot order.
func (idx *Index) NonNull() []Vote {
	out := make([]Vote, 0, len(idx.slots))
	for _, s := range idx.slots {
		if !s.IsNull() {
			out = append(out, s)
		}
	}
	return out
}

// Clone returns a deep-enough independent copy: Vote is a value type, so a
// plain struct copy suffices. Used by the MT synchronizer's scratch clone.
func (idx *Index) Clone() Index {
	var out Index
	out.slots = idx.slots
	return out
}

// Equal reports whether two indexes hold identical slots, including order.
func (idx *Index) Equal(other *Index) bool {
	return idx.slots == other.slots
}
