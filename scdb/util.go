package scdb

import (
	"encoding/hex"
	"strconv"

	"github.com/sidechain-labs/scdb/hashing"
)

func hexHash(h hashing.Hash256) string {
	return hex.EncodeToString(h[:])
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
