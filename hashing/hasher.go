// Package hashing provides the 256-bit digest used throughout SCDB: the
// per-vote leaf hash and the Merkle tree built over them. A narrow
// provider interface keeps the hash backend swappable without SCDB
// needing to import a crypto library directly; SCDB never verifies
// signatures, so that's the one operation this package exposes.
package hashing

import "golang.org/x/crypto/sha3"

// Hash256 is a 256-bit digest.
type Hash256 [32]byte

// IsZero reports whether h is the all-zero hash.
func (h Hash256) IsZero() bool {
	return h == Hash256{}
}

// Provider is the narrow hashing interface consensus code depends on, so
// that it can be swapped for an alternate backend in tests without
// reaching for a global.
type Provider interface {
	Sum256(data []byte) Hash256
}

// SHA3Provider is the production hasher: SHA3-256 over arbitrary input.
type SHA3Provider struct{}

func (SHA3Provider) Sum256(data []byte) Hash256 {
	return Hash256(sha3.Sum256(data))
}

// Default is the hasher used by merkle and vote-hashing code when no
// explicit Provider is supplied.
var Default Provider = SHA3Provider{}
