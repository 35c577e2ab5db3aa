package vault

import (
	"bytes"
	"encoding/json"

	"github.com/btcsuite/btcutil/base58"
	"github.com/iov-one/vault/errors"
)

// PubkeyLength is the size of every account address.
const PubkeyLength = 32

// Pubkey identifies an account. It is either an ed25519 public key or a
// program derived address, which by construction has no private key.
type Pubkey [PubkeyLength]byte

var (
	// SystemProgramID is the all zero key. Accounts that do not exist yet
	// are owned by it.
	SystemProgramID = Pubkey{}

	// NativeLoaderID owns every deployed program account.
	NativeLoaderID = MustPubkey("NativeLoader1111111111111111111111111111111")
)

// PubkeyFromBytes copies b into a Pubkey. The length must match exactly.
func PubkeyFromBytes(b []byte) (Pubkey, error) {
	var pk Pubkey
	if len(b) != PubkeyLength {
		return pk, errors.Wrapf(errors.ErrInput, "pubkey must be %d bytes, got %d", PubkeyLength, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

// ParsePubkey decodes the base58 text form of a key.
func ParsePubkey(s string) (Pubkey, error) {
	if s == "" {
		return Pubkey{}, errors.Wrap(errors.ErrInput, "empty pubkey")
	}
	raw := base58.Decode(s)
	if len(raw) == 0 {
		return Pubkey{}, errors.Wrapf(errors.ErrInput, "invalid base58 pubkey %q", s)
	}
	return PubkeyFromBytes(raw)
}

// MustPubkey is ParsePubkey that panics on failure. Use it only for
// constants.
func MustPubkey(s string) Pubkey {
	pk, err := ParsePubkey(s)
	if err != nil {
		panic(err)
	}
	return pk
}

// String returns the base58 encoding.
func (pk Pubkey) String() string {
	return base58.Encode(pk[:])
}

// Bytes returns a copy of the key bytes.
func (pk Pubkey) Bytes() []byte {
	b := make([]byte, PubkeyLength)
	copy(b, pk[:])
	return b
}

// Equals returns true if both keys are the same.
func (pk Pubkey) Equals(other Pubkey) bool {
	return pk == other
}

// IsZero returns true for the all zero key.
func (pk Pubkey) IsZero() bool {
	return pk == Pubkey{}
}

// Compare orders keys lexicographically by their bytes.
func (pk Pubkey) Compare(other Pubkey) int {
	return bytes.Compare(pk[:], other[:])
}

// MarshalText encodes the key in base58, which lets text formats such as
// TOML store it as a plain string.
func (pk Pubkey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

func (pk *Pubkey) UnmarshalText(raw []byte) error {
	parsed, err := ParsePubkey(string(raw))
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}

func (pk Pubkey) MarshalJSON() ([]byte, error) {
	return json.Marshal(pk.String())
}

func (pk *Pubkey) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	parsed, err := ParsePubkey(s)
	if err != nil {
		return err
	}
	*pk = parsed
	return nil
}
