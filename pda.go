package vault

import (
	"crypto/sha256"

	"filippo.io/edwards25519"
	"github.com/iov-one/vault/errors"
)

const (
	// MaxSeeds is the maximum number of seeds a program address may be
	// derived from.
	MaxSeeds = 16
	// MaxSeedLength is the maximum size of a single seed.
	MaxSeedLength = 32

	pdaMarker = "ProgramDerivedAddress"
)

// IsOnCurve returns true if b is the compressed encoding of a point on the
// ed25519 curve, that is if a private key for it could exist.
func IsOnCurve(b []byte) bool {
	if len(b) != PubkeyLength {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}

// IsOnCurve returns true if the key is a valid ed25519 point.
func (pk Pubkey) IsOnCurve() bool {
	return IsOnCurve(pk[:])
}

// CreateProgramAddress derives an address that only programID can sign for.
// It fails with ErrInvalidSeeds if the seeds are out of bounds or if the
// resulting hash happens to be a valid curve point.
func CreateProgramAddress(seeds [][]byte, programID Pubkey) (Pubkey, error) {
	if len(seeds) > MaxSeeds {
		return Pubkey{}, errors.Wrapf(errors.ErrInvalidSeeds, "%d seeds, max %d", len(seeds), MaxSeeds)
	}
	h := sha256.New()
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return Pubkey{}, errors.Wrapf(errors.ErrInvalidSeeds, "seed %d is %d bytes long", i, len(s))
		}
		h.Write(s)
	}
	h.Write(programID[:])
	h.Write([]byte(pdaMarker))

	var pk Pubkey
	copy(pk[:], h.Sum(nil))
	if pk.IsOnCurve() {
		return Pubkey{}, errors.Wrap(errors.ErrInvalidSeeds, "address on curve")
	}
	return pk, nil
}

// FindProgramAddress searches for a bump seed, starting at 255 and going
// down, so that seeds followed by the bump produce a valid program address.
// The first match is returned. Every call with the same arguments returns
// the same result.
func FindProgramAddress(seeds [][]byte, programID Pubkey) (Pubkey, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return Pubkey{}, 0, errors.Wrapf(errors.ErrInvalidSeeds, "%d seeds leave no room for a bump", len(seeds))
	}
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return Pubkey{}, 0, errors.Wrapf(errors.ErrInvalidSeeds, "seed %d is %d bytes long", i, len(s))
		}
	}
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	bump := []byte{0}
	withBump[len(seeds)] = bump

	for b := 255; b > 0; b-- {
		bump[0] = uint8(b)
		if pk, err := CreateProgramAddress(withBump, programID); err == nil {
			return pk, uint8(b), nil
		}
	}
	return Pubkey{}, 0, errors.Wrap(errors.ErrInvalidSeeds, "no viable bump seed")
}
