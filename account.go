package vault

import (
	"bytes"

	"github.com/iov-one/vault/errors"
)

// Account is the state stored for every key: a lamport balance, the program
// that owns it and opaque data that only the owner may change.
type Account struct {
	Lamports   uint64
	Owner      Pubkey
	Executable bool
	Data       []byte
}

// Clone returns a deep copy.
func (a *Account) Clone() *Account {
	c := *a
	if a.Data != nil {
		c.Data = make([]byte, len(a.Data))
		copy(c.Data, a.Data)
	}
	return &c
}

// Equal compares all fields. Nil and empty data are the same.
func (a *Account) Equal(b *Account) bool {
	return a.Lamports == b.Lamports &&
		a.Owner == b.Owner &&
		a.Executable == b.Executable &&
		bytes.Equal(a.Data, b.Data)
}

// IsOwnedBy returns true if program is the owner of this account.
func (a *Account) IsOwnedBy(program Pubkey) bool {
	return a.Owner == program
}

// Marshal encodes the account as an AccountRecord.
func (a *Account) Marshal() ([]byte, error) {
	rec := AccountRecord{
		Lamports:   a.Lamports,
		Owner:      a.Owner[:],
		Executable: a.Executable,
		Data:       a.Data,
	}
	return rec.Marshal()
}

// Unmarshal decodes what Marshal produced. The owner is required.
func (a *Account) Unmarshal(raw []byte) error {
	var rec AccountRecord
	if err := rec.Unmarshal(raw); err != nil {
		return errors.Wrap(errors.ErrInvalidAccountData, err.Error())
	}
	owner, err := PubkeyFromBytes(rec.Owner)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidAccountData, "owner")
	}
	*a = Account{
		Lamports:   rec.Lamports,
		Owner:      owner,
		Executable: rec.Executable,
	}
	if len(rec.Data) != 0 {
		a.Data = rec.Data
	}
	return nil
}

// AccountInfo is the view of an account a program receives while processing
// an instruction. Infos that refer to the same key share one Account, so a
// change made through one is visible through the others.
type AccountInfo struct {
	Key        Pubkey
	IsSigner   bool
	IsWritable bool
	*Account
}

// NewAccountInfo returns an info for the given account state.
func NewAccountInfo(key Pubkey, isSigner, isWritable bool, acc *Account) *AccountInfo {
	return &AccountInfo{
		Key:        key,
		IsSigner:   isSigner,
		IsWritable: isWritable,
		Account:    acc,
	}
}

// Meta returns the meta describing this info, as used to build an
// instruction for a cross-program invocation.
func (ai *AccountInfo) Meta() AccountMeta {
	return AccountMeta{Pubkey: ai.Key, IsSigner: ai.IsSigner, IsWritable: ai.IsWritable}
}

// Realloc resizes the data to size bytes, keeping the prefix and zero
// filling the rest.
func (ai *AccountInfo) Realloc(size int) {
	if size <= cap(ai.Data) {
		old := len(ai.Data)
		ai.Data = ai.Data[:size]
		for i := old; i < size; i++ {
			ai.Data[i] = 0
		}
		return
	}
	data := make([]byte, size)
	copy(data, ai.Data)
	ai.Data = data
}
