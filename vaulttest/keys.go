package vaulttest

import (
	"crypto/sha256"

	"github.com/iov-one/vault"
)

// NewKey returns a new random keypair.
func NewKey() *vault.Keypair {
	return vault.GenerateKeypair()
}

// NewPubkey returns a new random address that nobody holds a key for.
func NewPubkey() vault.Pubkey {
	return vault.GenerateKeypair().Pubkey()
}

// SequenceKey returns a keypair derived from n. The same n always returns
// the same key, which keeps test output stable.
func SequenceKey(n uint64) *vault.Keypair {
	seed := sha256.Sum256([]byte{byte(n >> 56), byte(n >> 48), byte(n >> 40), byte(n >> 32), byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)})
	k, err := vault.KeypairFromSeed(seed[:])
	if err != nil {
		panic(err)
	}
	return k
}
