// Package script implements the coinbase-output readers: pure functions
// that recognize a specific byte-exact script shape and decode it, or
// report a miss. None of them ever raise an error — a malformed or
// unrelated script is simply not this reader's shape, and the caller
// (Update) moves on to the next output. The byte offsets (6, 7, 39) have
// not been cross-checked against an external standard and remain this
// module's internal wire contract.
package script

import (
	"encoding/hex"

	"github.com/sidechain-labs/scdb/hashing"
	"github.com/sidechain-labs/scdb/sidechain"
)

const (
	opReturn = 0x6a // OP_RETURN
	opWT     = 0xc1 // withdrawal script marker (SCDB-local, not a standard Bitcoin opcode)
)

// wtHashCommitPrefix identifies a WT-hash commitment: OP_RETURN followed by
// a small constant tag, ending in the push opcode for the 32-byte bundle id
// that follows at offset 7.
var wtHashCommitPrefix = []byte{opReturn, 0x53, 0x57, 0x54, 0x01, 0x00, 0x20}

// rootCommitPrefix identifies an SCDB Merkle-root commitment: OP_RETURN
// followed by a small constant tag, ending in the push opcode for the
// 32-byte root that follows at offset 6.
var rootCommitPrefix = []byte{opReturn, 0x4d, 0x54, 0x01, 0x00, 0x20}

// IsUnspendable reports whether script begins with OP_RETURN.
func IsUnspendable(scr []byte) bool {
	return len(scr) > 0 && scr[0] == opReturn
}

func readPush(c *cursor) ([]byte, bool) {
	n, ok := c.readByte()
	if !ok || n == 0 || n > 75 {
		return nil, false
	}
	return c.readExact(int(n))
}

// CriticalHashCommit is the decoded h* commitment: a block number anchoring
// a sidechain block, and the critical hash itself.
type CriticalHashCommit struct {
	BlockNumber int32
	Hash        hashing.Hash256
}

// ReadCriticalHashCommit recognizes OP_RETURN <block-number push> <32-byte
// hash push>. Requires IsUnspendable and a script of at least 32 bytes.
func ReadCriticalHashCommit(scr []byte) (CriticalHashCommit, bool) {
	if !IsUnspendable(scr) || len(scr) < 32 {
		return CriticalHashCommit{}, false
	}
	c := newCursor(scr)
	c.off = 1 // past OP_RETURN

	bnLen, ok := c.readByte()
	if !ok || bnLen == 0 || bnLen > 4 {
		return CriticalHashCommit{}, false
	}
	bnBytes, ok := c.readExact(int(bnLen))
	if !ok {
		return CriticalHashCommit{}, false
	}
	blockNumber, ok := decodeScriptNum(bnBytes)
	if !ok {
		return CriticalHashCommit{}, false
	}

	hashPush, ok := readPush(c)
	if !ok || len(hashPush) != 32 {
		return CriticalHashCommit{}, false
	}
	var hash hashing.Hash256
	copy(hash[:], hashPush)

	return CriticalHashCommit{BlockNumber: blockNumber, Hash: hash}, true
}

// DepositScript is the decoded deposit commitment: which sidechain and
// which key ID the deposit pays to.
type DepositScript struct {
	Sidechain sidechain.ID
	KeyID     [20]byte
}

// ReadDepositScript recognizes OP_RETURN <sidechain id byte> <20-byte
// key-id push>.
func ReadDepositScript(scr []byte) (DepositScript, bool) {
	if !IsUnspendable(scr) || len(scr) < 2 {
		return DepositScript{}, false
	}
	c := newCursor(scr)
	c.off = 1

	scByte, ok := c.readByte()
	if !ok {
		return DepositScript{}, false
	}
	scID := sidechain.ID(scByte)
	if !sidechain.IsValid(scID) {
		return DepositScript{}, false
	}

	keyPush, ok := readPush(c)
	if !ok || len(keyPush) != 20 {
		return DepositScript{}, false
	}

	var depositScript DepositScript
	depositScript.Sidechain = scID
	copy(depositScript.KeyID[:], keyPush)
	return depositScript, true
}

// WithdrawalScript is the decoded WT script: the key ID paid out by a
// verified withdrawal bundle.
type WithdrawalScript struct {
	KeyID [20]byte
}

// ReadWithdrawalScript recognizes OP_WT <hex-encoded 20-byte key-id push>.
func ReadWithdrawalScript(scr []byte) (WithdrawalScript, bool) {
	if len(scr) < 1 || scr[0] != opWT {
		return WithdrawalScript{}, false
	}
	c := newCursor(scr)
	c.off = 1

	hexPush, ok := readPush(c)
	if !ok || len(hexPush) != 40 {
		return WithdrawalScript{}, false
	}
	keyBytes, err := hex.DecodeString(string(hexPush))
	if err != nil || len(keyBytes) != 20 {
		return WithdrawalScript{}, false
	}

	var ws WithdrawalScript
	copy(ws.KeyID[:], keyBytes)
	return ws, true
}

// WTHashCommit is the decoded WT-hash commitment: a bundle id and the
// sidechain it belongs to.
type WTHashCommit struct {
	BundleID  hashing.Hash256
	Sidechain sidechain.ID
}

// ReadWTHashCommit recognizes the constant WT-hash-commit prefix, a
// 32-byte bundle-id push at offset 7, followed by a sidechain-number push.
func ReadWTHashCommit(scr []byte) (WTHashCommit, bool) {
	if len(scr) < len(wtHashCommitPrefix)+32+2 {
		return WTHashCommit{}, false
	}
	for i, b := range wtHashCommitPrefix {
		if scr[i] != b {
			return WTHashCommit{}, false
		}
	}
	c := newCursor(scr)
	c.off = len(wtHashCommitPrefix)

	bundlePush, ok := c.readExact(32)
	if !ok {
		return WTHashCommit{}, false
	}
	var bundleID hashing.Hash256
	copy(bundleID[:], bundlePush)

	scPush, ok := readPush(c)
	if !ok || len(scPush) != 1 {
		return WTHashCommit{}, false
	}
	scID := sidechain.ID(scPush[0])
	if !sidechain.IsValid(scID) {
		return WTHashCommit{}, false
	}

	return WTHashCommit{BundleID: bundleID, Sidechain: scID}, true
}

// RootCommit is the decoded SCDB Merkle-root commitment.
type RootCommit struct {
	Root hashing.Hash256
}

// ReadRootCommit recognizes the constant root-commit prefix and a 32-byte
// root push at offset 6.
func ReadRootCommit(scr []byte) (RootCommit, bool) {
	if len(scr) < len(rootCommitPrefix)+32 {
		return RootCommit{}, false
	}
	for i, b := range rootCommitPrefix {
		if scr[i] != b {
			return RootCommit{}, false
		}
	}
	rootBytes := scr[len(rootCommitPrefix) : len(rootCommitPrefix)+32]
	var root hashing.Hash256
	copy(root[:], rootBytes)
	return RootCommit{Root: root}, true
}
