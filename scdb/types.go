package scdb

import (
	"bytes"

	"github.com/sidechain-labs/scdb/hashing"
	"github.com/sidechain-labs/scdb/sidechain"
)

// Transaction is the narrow view of a mainchain transaction SCDB needs:
// its own id (computed upstream by the node's transaction code) and the
// coinbase-style output scripts to scan for deposit/withdrawal
// commitments.
type Transaction struct {
	TxID    hashing.Hash256
	Outputs [][]byte
}

// Output is one coinbase output: just the script SCDB's readers parse.
// Amount and fee validation are the enclosing node's job, not SCDB's.
type Output struct {
	Script []byte
}

// Deposit records a sidechain deposit discovered in a transaction's
// outputs. Equality is structural, not reference-based.
type Deposit struct {
	Sidechain sidechain.ID
	KeyID     [20]byte
	Tx        Transaction
}

// Equal reports structural equality.
func (d Deposit) Equal(other Deposit) bool {
	return d.Sidechain == other.Sidechain &&
		d.KeyID == other.KeyID &&
		d.Tx.TxID == other.Tx.TxID &&
		bytesEqualAll(d.Tx.Outputs, other.Tx.Outputs)
}

func bytesEqualAll(a, b [][]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// bundleRecord pairs a cached bundle transaction with the sidechain it was
// registered against, so a tau reset can clear only that sidechain's
// entries.
type bundleRecord struct {
	Sidechain sidechain.ID
	Tx        Transaction
}

// Warning is one soft-rejected output observed while processing a block:
// an h* commitment rejected by the ratchet, or a WT-hash commit the
// transition engine refused. Outputs that match no reader are skipped
// without a warning.
type Warning struct {
	OutputIndex int
	Message     string
}

// UpdateReport is Update's success-path result: the warnings accumulated
// while scanning one block's coinbase outputs.
type UpdateReport struct {
	Warnings []Warning
}
