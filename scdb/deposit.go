package scdb

import "github.com/sidechain-labs/scdb/script"

// AddDeposits scans each transaction's outputs for deposit commitments and
// appends any not already cached this tau, following
// dedup-on-append semantics: a deposit is skipped once an equal one is
// already held for its sidechain.
func (s *SCDB) AddDeposits(txs []Transaction) {
	for _, tx := range txs {
		for _, out := range tx.Outputs {
			ds, ok := script.ReadDepositScript(out)
			if !ok {
				continue
			}
			d := Deposit{Sidechain: ds.Sidechain, KeyID: ds.KeyID, Tx: tx}
			if !s.haveDepositCached(d) {
				s.depositCache = append(s.depositCache, d)
			}
		}
	}
}

// haveDepositCached performs a linear equality scan over the cache.
func (s *SCDB) haveDepositCached(d Deposit) bool {
	for _, cached := range s.depositCache {
		if cached.Equal(d) {
			return true
		}
	}
	return false
}
