package bundleindex

import (
	"testing"

	"github.com/sidechain-labs/scdb/hashing"
	"github.com/sidechain-labs/scdb/sidechain"
)

func hashFromByte(b byte) hashing.Hash256 {
	var h hashing.Hash256
	h[0] = b
	return h
}

func TestInsertAndGet(t *testing.T) {
	var idx Index
	v := Vote{Sidechain: sidechain.Test, BundleID: hashFromByte(1), BlocksLeft: 200, WorkScore: 0}
	if !idx.Insert(v) {
		t.Fatalf("expected insert into empty index to succeed")
	}
	got, ok := idx.Get(v.BundleID)
	if !ok || got != v {
		t.Fatalf("Get returned %+v, %v", got, ok)
	}
}

func TestInsertOverwritesExisting(t *testing.T) {
	var idx Index
	id := hashFromByte(1)
	idx.Insert(Vote{Sidechain: sidechain.Test, BundleID: id, BlocksLeft: 200, WorkScore: 0})
	idx.Insert(Vote{Sidechain: sidechain.Test, BundleID: id, BlocksLeft: 199, WorkScore: 1})

	got, ok := idx.Get(id)
	if !ok || got.WorkScore != 1 || got.BlocksLeft != 199 {
		t.Fatalf("expected overwrite, got %+v", got)
	}
	if idx.IsFull() {
		t.Fatalf("expected index with one of three slots filled to not be full")
	}
}

func TestIsFullAndCapacityReject(t *testing.T) {
	var idx Index
	for i := byte(1); i <= sidechain.MaxBundlesPerSidechain; i++ {
		if !idx.Insert(Vote{Sidechain: sidechain.Test, BundleID: hashFromByte(i), BlocksLeft: 200, WorkScore: 0}) {
			t.Fatalf("expected insert %d to succeed", i)
		}
	}
	if !idx.IsFull() {
		t.Fatalf("expected index to be full")
	}
	if idx.Insert(Vote{Sidechain: sidechain.Test, BundleID: hashFromByte(99), BlocksLeft: 200, WorkScore: 0}) {
		t.Fatalf("expected insert into full index with unknown bundle to fail")
	}
}

func TestClearAll(t *testing.T) {
	var idx Index
	idx.Insert(Vote{Sidechain: sidechain.Test, BundleID: hashFromByte(1), BlocksLeft: 200, WorkScore: 0})
	idx.ClearAll()
	if idx.IsPopulated() {
		t.Fatalf("expected cleared index to be unpopulated")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var idx Index
	idx.Insert(Vote{Sidechain: sidechain.Test, BundleID: hashFromByte(1), BlocksLeft: 200, WorkScore: 0})
	clone := idx.Clone()
	clone.Insert(Vote{Sidechain: sidechain.Test, BundleID: hashFromByte(2), BlocksLeft: 200, WorkScore: 0})
	if _, ok := idx.Get(hashFromByte(2)); ok {
		t.Fatalf("mutating the clone must not affect the original")
	}
	if !idx.Equal(&idx) {
		t.Fatalf("expected self-equality")
	}
}
