package script

import (
	"encoding/hex"
	"testing"

	"github.com/sidechain-labs/scdb/hashing"
	"github.com/sidechain-labs/scdb/sidechain"
)

func buildCriticalHashScript(blockNumber int32, hash hashing.Hash256) []byte {
	bn := encodeScriptNumForTest(blockNumber)
	out := []byte{opReturn, byte(len(bn))}
	out = append(out, bn...)
	out = append(out, 0x20)
	out = append(out, hash[:]...)
	return out
}

// encodeScriptNumForTest mirrors CScriptNum's encoding (minimal little
// endian magnitude, sign in the top bit of the last byte) so tests can
// build fixtures without depending on production encode code SCDB itself
// never needs (it only ever decodes).
func encodeScriptNumForTest(n int32) []byte {
	if n == 0 {
		return nil
	}
	neg := n < 0
	abs := uint64(n)
	if neg {
		abs = uint64(-int64(n))
	}
	var result []byte
	for abs > 0 {
		result = append(result, byte(abs&0xff))
		abs >>= 8
	}
	if result[len(result)-1]&0x80 != 0 {
		if neg {
			result = append(result, 0x80)
		} else {
			result = append(result, 0x00)
		}
	} else if neg {
		result[len(result)-1] |= 0x80
	}
	return result
}

func hashFromByte(b byte) hashing.Hash256 {
	var h hashing.Hash256
	h[0] = b
	return h
}

func TestReadCriticalHashCommit(t *testing.T) {
	want := hashFromByte(0x42)
	scr := buildCriticalHashScript(12345, want)

	got, ok := ReadCriticalHashCommit(scr)
	if !ok {
		t.Fatalf("expected match")
	}
	if got.BlockNumber != 12345 || got.Hash != want {
		t.Fatalf("got %+v", got)
	}
}

func TestReadCriticalHashCommitRejectsNonOpReturn(t *testing.T) {
	scr := buildCriticalHashScript(1, hashFromByte(1))
	scr[0] = 0x00
	if _, ok := ReadCriticalHashCommit(scr); ok {
		t.Fatalf("expected rejection of non-OP_RETURN script")
	}
}

func TestReadDepositScript(t *testing.T) {
	var keyID [20]byte
	keyID[0] = 0xaa
	scr := []byte{opReturn, byte(sidechain.Test), 0x14}
	scr = append(scr, keyID[:]...)

	got, ok := ReadDepositScript(scr)
	if !ok || got.Sidechain != sidechain.Test || got.KeyID != keyID {
		t.Fatalf("got %+v, %v", got, ok)
	}
}

func TestReadDepositScriptRejectsInvalidSidechain(t *testing.T) {
	scr := []byte{opReturn, 0xff, 0x14}
	scr = append(scr, make([]byte, 20)...)
	if _, ok := ReadDepositScript(scr); ok {
		t.Fatalf("expected rejection of unrecognized sidechain id")
	}
}

func TestReadWithdrawalScript(t *testing.T) {
	var keyID [20]byte
	keyID[0] = 0xbb
	hexKey := hex.EncodeToString(keyID[:])

	scr := []byte{opWT, byte(len(hexKey))}
	scr = append(scr, []byte(hexKey)...)

	got, ok := ReadWithdrawalScript(scr)
	if !ok || got.KeyID != keyID {
		t.Fatalf("got %+v, %v", got, ok)
	}
}

func TestReadWTHashCommit(t *testing.T) {
	bundleID := hashFromByte(0x9)
	scr := append([]byte{}, wtHashCommitPrefix...)
	scr = append(scr, bundleID[:]...)
	scr = append(scr, 0x01, byte(sidechain.Hivemind))

	got, ok := ReadWTHashCommit(scr)
	if !ok || got.BundleID != bundleID || got.Sidechain != sidechain.Hivemind {
		t.Fatalf("got %+v, %v", got, ok)
	}
}

func TestReadRootCommit(t *testing.T) {
	root := hashFromByte(0x55)
	scr := append([]byte{}, rootCommitPrefix...)
	scr = append(scr, root[:]...)

	got, ok := ReadRootCommit(scr)
	if !ok || got.Root != root {
		t.Fatalf("got %+v, %v", got, ok)
	}
}

func TestReadersMissOnUnrelatedScript(t *testing.T) {
	scr := []byte{0x76, 0xa9, 0x14}
	if _, ok := ReadCriticalHashCommit(scr); ok {
		t.Fatalf("expected miss")
	}
	if _, ok := ReadDepositScript(scr); ok {
		t.Fatalf("expected miss")
	}
	if _, ok := ReadWithdrawalScript(scr); ok {
		t.Fatalf("expected miss")
	}
	if _, ok := ReadWTHashCommit(scr); ok {
		t.Fatalf("expected miss")
	}
	if _, ok := ReadRootCommit(scr); ok {
		t.Fatalf("expected miss")
	}
}
