package vault

import (
	"crypto/sha256"

	"github.com/iov-one/vault/errors"
)

// Signature is an ed25519 signature over Tx.SignBytes.
type Signature struct {
	Pubkey    Pubkey `json:"pubkey"`
	Signature []byte `json:"signature"`
}

// Tx is a list of instructions that execute atomically, together with the
// signatures that authorize them.
//
// Nonce has no meaning to the runtime. Clients set it to make otherwise
// identical transactions distinct.
type Tx struct {
	Nonce        uint64        `json:"nonce"`
	Instructions []Instruction `json:"instructions"`
	Signatures   []Signature   `json:"signatures"`
}

// NewTx returns an unsigned transaction.
func NewTx(nonce uint64, ixs ...Instruction) *Tx {
	return &Tx{Nonce: nonce, Instructions: ixs}
}

// SignBytes returns the canonical encoding of everything but the
// signatures, a marshaled SignDoc.
func (tx *Tx) SignBytes() []byte {
	doc := SignDoc{
		Nonce:        tx.Nonce,
		Instructions: make([]*InstructionDoc, len(tx.Instructions)),
	}
	for i, ix := range tx.Instructions {
		doc.Instructions[i] = instructionDoc(ix)
	}
	raw, err := doc.Marshal()
	if err != nil {
		// Marshal of a generated message only fails on a programming error.
		panic(err)
	}
	return raw
}

func instructionDoc(ix Instruction) *InstructionDoc {
	doc := &InstructionDoc{
		ProgramId: ix.ProgramID.Bytes(),
		Accounts:  make([]*AccountMetaDoc, len(ix.Accounts)),
		Data:      ix.Data,
	}
	for i, m := range ix.Accounts {
		doc.Accounts[i] = &AccountMetaDoc{
			Pubkey:     m.Pubkey.Bytes(),
			IsSigner:   m.IsSigner,
			IsWritable: m.IsWritable,
		}
	}
	return doc
}

// ID is the hash of the signed content. It identifies a transaction in
// logs and client output.
func (tx *Tx) ID() []byte {
	h := sha256.Sum256(tx.SignBytes())
	return h[:]
}

// Signers returns every key any instruction requires a signature from.
func (tx *Tx) Signers() []Pubkey {
	var signers []Pubkey
	seen := make(map[Pubkey]bool)
	for _, ix := range tx.Instructions {
		for _, s := range ix.Signers() {
			if !seen[s] {
				seen[s] = true
				signers = append(signers, s)
			}
		}
	}
	return signers
}

// Sign appends a signature of each key. Signing the same key twice replaces
// the previous signature.
func (tx *Tx) Sign(keys ...*Keypair) {
	msg := tx.SignBytes()
	for _, k := range keys {
		sig := Signature{Pubkey: k.Pubkey(), Signature: k.Sign(msg)}
		replaced := false
		for i := range tx.Signatures {
			if tx.Signatures[i].Pubkey == sig.Pubkey {
				tx.Signatures[i] = sig
				replaced = true
			}
		}
		if !replaced {
			tx.Signatures = append(tx.Signatures, sig)
		}
	}
}

// Verify checks every attached signature and returns the keys that signed.
// A single invalid signature fails the whole transaction.
func (tx *Tx) Verify() ([]Pubkey, error) {
	msg := tx.SignBytes()
	signers := make([]Pubkey, 0, len(tx.Signatures))
	for i, sig := range tx.Signatures {
		if !VerifySignature(sig.Pubkey, msg, sig.Signature) {
			return nil, errors.Wrapf(errors.ErrUnauthorized, "signature %d by %s", i, sig.Pubkey)
		}
		signers = append(signers, sig.Pubkey)
	}
	return signers, nil
}
