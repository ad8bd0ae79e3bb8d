package scdb

import (
	"github.com/sidechain-labs/scdb/bundleindex"
	"github.com/sidechain-labs/scdb/hashing"
	"github.com/sidechain-labs/scdb/sidechain"
)

// UpdateToRoot resynchronizes state from a bare target root alone: it
// searches the Cartesian product of per-bundle {abstain, +1, -1} vote
// transitions for a set that reproduces target, and commits the first
// match it finds. The search never mutates live state before a match is
// confirmed — every candidate is evaluated against a scratch clone via
// RootIfApplied.
func (s *SCDB) UpdateToRoot(target hashing.Hash256) bool {
	if s.Root() == target {
		return true
	}

	candidates := s.enumerateCandidates()
	if s.metrics != nil {
		s.metrics.observeSyncCandidates(len(candidates))
	}

	for _, v := range candidates {
		if s.RootIfApplied(v) == target {
			s.ApplyTransition(v)
			matched := s.Root() == target
			if s.metrics != nil {
				s.metrics.observeSyncOutcome(matched)
			}
			return matched
		}
	}
	if s.metrics != nil {
		s.metrics.observeSyncOutcome(false)
	}
	return false
}

// enumerateCandidates builds the full Cartesian-product candidate list:
// per-sidechain combinations of per-slot {abstain, +1, -1} variants,
// combined across every sidechain that currently has at least one active
// bundle.
func (s *SCDB) enumerateCandidates() [][]bundleindex.Vote {
	var perSidechain [][][]bundleindex.Vote

	for i, p := range sidechain.Valid {
		active := s.indexes[i].NonNull()
		if len(active) == 0 {
			continue
		}
		perSidechain = append(perSidechain, sidechainCombos(active, p.ID))
	}

	if len(perSidechain) == 0 {
		return nil
	}

	combined := [][]bundleindex.Vote{{}}
	for _, combos := range perSidechain {
		var next [][]bundleindex.Vote
		for _, prefix := range combined {
			for _, combo := range combos {
				merged := append(append([]bundleindex.Vote{}, prefix...), combo...)
				next = append(next, merged)
			}
		}
		combined = next
	}
	return combined
}

// sidechainCombos builds the Cartesian product, within one sidechain, of
// each active slot's variant set.
func sidechainCombos(active []bundleindex.Vote, id sidechain.ID) [][]bundleindex.Vote {
	perSlot := make([][]bundleindex.Vote, len(active))
	for i, v := range active {
		perSlot[i] = voteVariants(v, id)
	}

	combos := [][]bundleindex.Vote{{}}
	for _, variants := range perSlot {
		var next [][]bundleindex.Vote
		for _, prefix := range combos {
			for _, variant := range variants {
				next = append(next, append(append([]bundleindex.Vote{}, prefix...), variant))
			}
		}
		combos = next
	}
	return combos
}

// voteVariants returns the {abstain, +1, -1} candidate votes for one active
// bundle slot. -1 is omitted once the score is already 0; +1 is omitted
// once the score is already at the sidechain's tau ceiling, preserving
// 0 ≤ work_score ≤ tau.
func voteVariants(v bundleindex.Vote, id sidechain.ID) []bundleindex.Vote {
	blocksLeft := v.BlocksLeft
	if blocksLeft > 0 {
		blocksLeft--
	}
	abstain := bundleindex.Vote{Sidechain: v.Sidechain, BundleID: v.BundleID, BlocksLeft: blocksLeft, WorkScore: v.WorkScore}

	variants := []bundleindex.Vote{abstain}

	tau := sidechain.Tau(id)
	if v.WorkScore < tau {
		up := abstain
		up.WorkScore++
		variants = append(variants, up)
	}
	if v.WorkScore > 0 {
		down := abstain
		down.WorkScore--
		variants = append(variants, down)
	}
	return variants
}
