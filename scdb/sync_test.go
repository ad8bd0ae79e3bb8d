package scdb

import (
	"testing"

	"github.com/sidechain-labs/scdb/bundleindex"
	"github.com/sidechain-labs/scdb/sidechain"
)

func TestUpdateToRootNoOpWhenAlreadyMatching(t *testing.T) {
	db := New()
	if !db.UpdateToRoot(db.Root()) {
		t.Fatalf("expected true when target already matches current root")
	}
}

func TestUpdateToRootFindsSingleVoteTransition(t *testing.T) {
	source := New()
	id := bundleHash(1)
	source.ApplyTransition([]bundleindex.Vote{
		{Sidechain: sidechain.Test, BundleID: id, BlocksLeft: sidechain.Tau(sidechain.Test), WorkScore: 0},
	})

	dest := New()
	dest.ApplyTransition([]bundleindex.Vote{
		{Sidechain: sidechain.Test, BundleID: id, BlocksLeft: sidechain.Tau(sidechain.Test), WorkScore: 0},
	})
	// advance source by one upvote
	source.ApplyTransition([]bundleindex.Vote{
		{Sidechain: sidechain.Test, BundleID: id, BlocksLeft: sidechain.Tau(sidechain.Test) - 1, WorkScore: 1},
	})

	if !dest.UpdateToRoot(source.Root()) {
		t.Fatalf("expected UpdateToRoot to find the matching single-vote transition")
	}
	if dest.Root() != source.Root() {
		t.Fatalf("dest root does not match source root after sync")
	}

	got, ok := dest.indexFor(sidechain.Test).Get(id)
	if !ok || got.WorkScore != 1 {
		t.Fatalf("dest state did not converge to source state: %+v ok=%v", got, ok)
	}
}

func TestUpdateToRootFailsOnUnreachableTarget(t *testing.T) {
	db := New()
	db.ApplyTransition([]bundleindex.Vote{
		{Sidechain: sidechain.Test, BundleID: bundleHash(1), BlocksLeft: sidechain.Tau(sidechain.Test), WorkScore: 0},
	})
	target := bundleHash(250) // not a real root, effectively unreachable
	if db.UpdateToRoot(target) {
		t.Fatalf("expected UpdateToRoot to fail on an unreachable target")
	}
}

func TestVoteVariantsOmitNegativeAtZeroAndPositiveAtTau(t *testing.T) {
	tau := sidechain.Tau(sidechain.Test)

	atZero := bundleindex.Vote{Sidechain: sidechain.Test, BundleID: bundleHash(1), BlocksLeft: tau, WorkScore: 0}
	variants := voteVariants(atZero, sidechain.Test)
	for _, v := range variants {
		if v.WorkScore+1 == atZero.WorkScore {
			t.Fatalf("a -1 variant was offered at work_score 0")
		}
	}

	atTau := bundleindex.Vote{Sidechain: sidechain.Test, BundleID: bundleHash(1), BlocksLeft: tau, WorkScore: tau}
	variants = voteVariants(atTau, sidechain.Test)
	for _, v := range variants {
		if v.WorkScore > atTau.WorkScore {
			t.Fatalf("a +1 variant was offered at work_score == tau")
		}
	}
}
