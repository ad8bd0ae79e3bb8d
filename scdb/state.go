// Package scdb is the Sidechain Database: a consensus-critical state
// machine tracking withdrawal-bundle voting progress and a bounded
// BMM linking ratchet. It is single-writer, single-threaded — the
// enclosing node is responsible for serializing mutating calls behind one
// lock for the duration of block connection; SCDB itself performs no
// locking, no I/O, and no background work.
package scdb

import (
	"github.com/sidechain-labs/scdb/bundleindex"
	"github.com/sidechain-labs/scdb/hashing"
	"github.com/sidechain-labs/scdb/ratchet"
	"github.com/sidechain-labs/scdb/sidechain"
)

// Logger is the narrow structured-logging interface SCDB's update driver
// depends on. *zap.SugaredLogger satisfies it.
type Logger interface {
	Warnw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Warnw(string, ...interface{}) {}
func (nopLogger) Infow(string, ...interface{}) {}

// SCDB is the root state: per-sidechain bundle indexes, the BMM linking
// ratchet, the deposit and bundle-transaction caches, and the last block
// seen. The zero value is not ready to use; construct with New.
type SCDB struct {
	indexes       []bundleindex.Index // parallel to sidechain.Valid
	ratchet       *ratchet.Ratchet
	depositCache  []Deposit
	bundleTxCache []bundleRecord
	lastSeenBlock hashing.Hash256

	hasher  hashing.Provider
	log     Logger
	metrics *Metrics
}

// Option configures an SCDB at construction time. Only ambient concerns
// (hashing backend, logging, metrics) are configurable — consensus
// parameters are compiled in.
type Option func(*SCDB)

// WithHasher overrides the digest provider (for example, to swap in a
// deterministic stub).
func WithHasher(h hashing.Provider) Option {
	return func(s *SCDB) { s.hasher = h }
}

// WithLogger attaches a structured logger. Without this option, SCDB logs
// nothing.
func WithLogger(l Logger) Option {
	return func(s *SCDB) { s.log = l }
}

// WithMetrics attaches a Metrics collector. Without this option, SCDB
// records nothing.
func WithMetrics(m *Metrics) Option {
	return func(s *SCDB) { s.metrics = m }
}

// New constructs an empty SCDB: no cached deposits, no bundle votes, no
// ratchet history, ready for the first call to Update.
func New(opts ...Option) *SCDB {
	s := &SCDB{
		indexes: make([]bundleindex.Index, len(sidechain.Valid)),
		ratchet: ratchet.New(sidechain.MaxLinkingData),
		hasher:  hashing.Default,
		log:     nopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset returns SCDB to its initial empty state. Idempotent: Reset();
// Reset() leaves the same state as a single Reset().
func (s *SCDB) Reset() {
	s.indexes = make([]bundleindex.Index, len(sidechain.Valid))
	s.ratchet.Reset()
	s.depositCache = nil
	s.bundleTxCache = nil
	s.lastSeenBlock = hashing.Hash256{}
}

// clearTau resets everything scoped to one sidechain's tau period: its
// bundle index, its cached deposits, and its cached bundle transactions.
func (s *SCDB) clearTau(id sidechain.ID) {
	idx := s.indexFor(id)
	if idx == nil {
		return
	}
	idx.ClearAll()

	deposits := s.depositCache[:0]
	for _, d := range s.depositCache {
		if d.Sidechain != id {
			deposits = append(deposits, d)
		}
	}
	s.depositCache = deposits

	bundles := s.bundleTxCache[:0]
	for _, b := range s.bundleTxCache {
		if b.Sidechain != id {
			bundles = append(bundles, b)
		}
	}
	s.bundleTxCache = bundles
}

// slotOf returns the position of id in the parallel indexes slice, or -1
// if id is not a recognized sidechain.
func slotOf(id sidechain.ID) int {
	for i, p := range sidechain.Valid {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *SCDB) indexFor(id sidechain.ID) *bundleindex.Index {
	i := slotOf(id)
	if i < 0 {
		return nil
	}
	return &s.indexes[i]
}

// LastSeenBlock returns the hash of the last block SCDB processed.
func (s *SCDB) LastSeenBlock() hashing.Hash256 {
	return s.lastSeenBlock
}

// LinkingData returns a read-only snapshot of the BMM ratchet's
// hash-to-height multimap.
func (s *SCDB) LinkingData() map[hashing.Hash256][]int32 {
	return s.ratchet.LinkingData()
}

// CheckWorkScore reports whether bundleID is tracked on sidechain with a
// work score at or above that sidechain's minimum acceptance threshold.
func (s *SCDB) CheckWorkScore(id sidechain.ID, bundleID hashing.Hash256) bool {
	idx := s.indexFor(id)
	if idx == nil {
		return false
	}
	vote, ok := idx.Get(bundleID)
	if !ok {
		return false
	}
	return vote.WorkScore >= sidechain.MinWorkScore(id)
}

// GetState returns a snapshot of the non-null bundle votes tracked for id,
// in slot order.
func (s *SCDB) GetState(id sidechain.ID) []bundleindex.Vote {
	idx := s.indexFor(id)
	if idx == nil {
		return nil
	}
	return idx.NonNull()
}

// GetDeposits returns a snapshot of the deposits cached this tau for id.
func (s *SCDB) GetDeposits(id sidechain.ID) []Deposit {
	out := make([]Deposit, 0, len(s.depositCache))
	for _, d := range s.depositCache {
		if d.Sidechain == id {
			out = append(out, d)
		}
	}
	return out
}

// DebugString returns a human-readable dump of per-sidechain state. Used
// only by the inspection CLI, never by consensus logic.
func (s *SCDB) DebugString() string {
	out := ""
	for i, p := range sidechain.Valid {
		out += p.Name + ":\n"
		for _, v := range s.indexes[i].NonNull() {
			out += "  bundle=" + hexHash(v.BundleID) +
				" blocks_left=" + itoa(int(v.BlocksLeft)) +
				" work_score=" + itoa(int(v.WorkScore)) + "\n"
		}
	}
	return out
}
