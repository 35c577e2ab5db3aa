package vault

import (
	"github.com/iov-one/vault/errors"
)

// AccountMeta references an account from an instruction together with the
// privileges the instruction requires for it.
type AccountMeta struct {
	Pubkey     Pubkey `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// Writable returns a meta for an account the instruction modifies.
func Writable(pk Pubkey, isSigner bool) AccountMeta {
	return AccountMeta{Pubkey: pk, IsSigner: isSigner, IsWritable: true}
}

// ReadOnly returns a meta for an account the instruction only reads.
func ReadOnly(pk Pubkey, isSigner bool) AccountMeta {
	return AccountMeta{Pubkey: pk, IsSigner: isSigner}
}

// Instruction is a single call to a program.
type Instruction struct {
	ProgramID Pubkey        `json:"program_id"`
	Accounts  []AccountMeta `json:"accounts"`
	Data      []byte        `json:"data"`
}

// Signers returns the keys this instruction requires a signature from, in
// order of appearance and without duplicates.
func (ix Instruction) Signers() []Pubkey {
	var signers []Pubkey
	seen := make(map[Pubkey]bool)
	for _, m := range ix.Accounts {
		if m.IsSigner && !seen[m.Pubkey] {
			seen[m.Pubkey] = true
			signers = append(signers, m.Pubkey)
		}
	}
	return signers
}

// AccountIter hands out the accounts of an instruction one by one, in the
// order the program expects them.
type AccountIter struct {
	accounts []*AccountInfo
	pos      int
}

// NewAccountIter returns an iterator over accounts.
func NewAccountIter(accounts []*AccountInfo) *AccountIter {
	return &AccountIter{accounts: accounts}
}

// Next returns the next account or ErrNotEnoughAccountKeys when all were
// consumed.
func (it *AccountIter) Next() (*AccountInfo, error) {
	if it.pos >= len(it.accounts) {
		return nil, errors.Wrapf(errors.ErrNotEnoughAccountKeys, "account %d", it.pos)
	}
	ai := it.accounts[it.pos]
	it.pos++
	return ai, nil
}

// Remaining returns how many accounts were not consumed yet.
func (it *AccountIter) Remaining() int {
	return len(it.accounts) - it.pos
}
