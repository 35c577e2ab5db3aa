package vault

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/iov-one/vault/errors"
	"github.com/stellar/go/exp/crypto/derivation"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ed25519"
)

// DefaultDerivationPath is the bip44 path wallets use for the first account.
const DefaultDerivationPath = "m/44'/501'/0'/0'"

// KeyPerm is the file permissions for saved private keys
const KeyPerm = 0600

// Keypair is an ed25519 private key together with its public key.
type Keypair struct {
	priv ed25519.PrivateKey
}

// GenerateKeypair creates a new random key.
func GenerateKeypair() *Keypair {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return &Keypair{priv: priv}
}

// KeypairFromSeed creates the key for a 32 byte ed25519 seed.
func KeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Wrapf(errors.ErrInput, "seed must be %d bytes", ed25519.SeedSize)
	}
	return &Keypair{priv: ed25519.NewKeyFromSeed(seed)}, nil
}

// KeypairFromMnemonic derives a key from a bip39 mnemonic along the given
// bip44 path. An empty path means DefaultDerivationPath.
func KeypairFromMnemonic(mnemonic, password, path string) (*Keypair, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.Wrap(errors.ErrInput, "invalid mnemonic")
	}
	if path == "" {
		path = DefaultDerivationPath
	}
	seed := bip39.NewSeed(mnemonic, password)
	k, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "derive %q: %s", path, err)
	}
	return KeypairFromSeed(k.Key)
}

// NewMnemonic returns a fresh 24 word mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", errors.Wrap(errors.ErrHuman, err.Error())
	}
	return bip39.NewMnemonic(entropy)
}

// Pubkey returns the public half of the key.
func (k *Keypair) Pubkey() Pubkey {
	var pk Pubkey
	copy(pk[:], k.priv.Public().(ed25519.PublicKey))
	return pk
}

// Sign returns the ed25519 signature of msg.
func (k *Keypair) Sign(msg []byte) []byte {
	return ed25519.Sign(k.priv, msg)
}

// Seed returns the 32 byte seed the key was created from.
func (k *Keypair) Seed() []byte {
	return k.priv.Seed()
}

// VerifySignature checks an ed25519 signature made by pk.
func VerifySignature(pk Pubkey, msg, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pk[:]), msg, sig)
}

// keyFile is the format keys are saved in. The seed is hex encoded and the
// public key is there for humans only.
type keyFile struct {
	Pubkey Pubkey `json:"pubkey"`
	Seed   string `json:"seed"`
}

// LoadKeypair will load a key from a file, which was previously writen by
// SaveKeypair.
func LoadKeypair(filename string) (*Keypair, error) {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "read %s: %s", filename, err)
	}
	var f keyFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decode %s: %s", filename, err)
	}
	seed, err := hex.DecodeString(f.Seed)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decode seed: %s", err)
	}
	k, err := KeypairFromSeed(seed)
	if err != nil {
		return nil, err
	}
	if !f.Pubkey.IsZero() && f.Pubkey != k.Pubkey() {
		return nil, errors.Wrap(errors.ErrInput, "pubkey does not match seed")
	}
	return k, nil
}

// SaveKeypair writes the key to the named file. It will refuse to overwrite
// a file unless force is set.
func SaveKeypair(k *Keypair, filename string, force bool) error {
	if !force {
		if _, err := os.Stat(filename); err == nil {
			return errors.Wrapf(errors.ErrInput, "refusing to overwrite: %s", filename)
		}
	}
	raw, err := json.MarshalIndent(keyFile{
		Pubkey: k.Pubkey(),
		Seed:   hex.EncodeToString(k.Seed()),
	}, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrHuman, err.Error())
	}
	return ioutil.WriteFile(filename, raw, KeyPerm)
}
