package scdb

import (
	"github.com/sidechain-labs/scdb/bundleindex"
	"github.com/sidechain-labs/scdb/hashing"
	"github.com/sidechain-labs/scdb/scdberr"
	"github.com/sidechain-labs/scdb/script"
	"github.com/sidechain-labs/scdb/sidechain"
)

// Update is the per-block entry point. It resets any sidechain whose tau
// period just ended, advances the BMM ratchet over every h* commitment in
// input order, admits any new
// candidate bundle it finds, and attempts a single-root MT sync if exactly
// one SCDB-root commitment is present. Individual output-level failures are
// recorded as warnings and do not abort the block; only a null block hash
// or an empty output set is a hard failure, and in that case none of
// Update's effects are applied.
func (s *SCDB) Update(height int32, blockHash hashing.Hash256, outputs []Output) (*UpdateReport, error) {
	if blockHash.IsZero() {
		return nil, scdberr.Preconditionf("update: null block hash")
	}
	if len(outputs) == 0 {
		return nil, scdberr.Preconditionf("update: empty outputs")
	}

	for _, p := range sidechain.Valid {
		if !sidechain.IsTauBoundary(p.ID, height) {
			continue
		}
		s.clearTau(p.ID)
		s.log.Infow("sidechain tau reset", "sidechain", p.Name, "height", height)
		if s.metrics != nil {
			s.metrics.tauResets.Inc()
		}
	}

	report := &UpdateReport{}

	for i, out := range outputs {
		hc, ok := script.ReadCriticalHashCommit(out.Script)
		if !ok {
			continue
		}
		if s.ratchet.TryAppend(hc.Hash, hc.BlockNumber) {
			continue
		}
		report.Warnings = append(report.Warnings, Warning{
			OutputIndex: i,
			Message:     "SidechainDB::Update: h* invalid",
		})
		s.log.Warnw("ratchet rejected h*", "output", i, "block_number", hc.BlockNumber)
		if s.metrics != nil {
			s.metrics.softRejects.Inc()
		}
	}

	for i, out := range outputs {
		wc, ok := script.ReadWTHashCommit(out.Script)
		if !ok {
			continue
		}
		vote := bundleindex.Vote{
			Sidechain:  wc.Sidechain,
			BundleID:   wc.BundleID,
			BlocksLeft: sidechain.Tau(wc.Sidechain),
			WorkScore:  0,
		}
		if !s.ApplyTransition([]bundleindex.Vote{vote}) {
			report.Warnings = append(report.Warnings, Warning{
				OutputIndex: i,
				Message:     "SidechainDB::Update: invalid sidechain in WT-hash commit",
			})
		}
	}

	var roots []hashing.Hash256
	for _, out := range outputs {
		rc, ok := script.ReadRootCommit(out.Script)
		if !ok {
			continue
		}
		roots = append(roots, rc.Root)
	}
	if len(roots) == 1 {
		if s.UpdateToRoot(roots[0]) {
			s.log.Infow("mt sync matched", "root", hexHash(roots[0]))
		}
	}

	s.lastSeenBlock = blockHash
	if s.metrics != nil {
		s.metrics.blocksProcessed.Inc()
	}
	return report, nil
}
