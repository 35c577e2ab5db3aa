package system

import (
	"encoding/binary"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Instruction discriminants, encoded as u32 little endian.
const (
	InstructionCreateAccount uint32 = 0
	InstructionAssign        uint32 = 1
	InstructionTransfer      uint32 = 2
	InstructionAllocate      uint32 = 8
)

// MaxAccountDataSize is the largest data an account may hold.
const MaxAccountDataSize = 10 * 1024 * 1024

// ProgramID is the id of the system program.
var ProgramID = vault.SystemProgramID

// CreateAccountData is the payload of a CreateAccount instruction.
type CreateAccountData struct {
	Lamports uint64
	Space    uint64
	Owner    vault.Pubkey
}

func (d CreateAccountData) Marshal() []byte {
	b := make([]byte, 4+8+8+vault.PubkeyLength)
	binary.LittleEndian.PutUint32(b, InstructionCreateAccount)
	binary.LittleEndian.PutUint64(b[4:], d.Lamports)
	binary.LittleEndian.PutUint64(b[12:], d.Space)
	copy(b[20:], d.Owner[:])
	return b
}

func (d *CreateAccountData) Unmarshal(b []byte) error {
	if len(b) < 48 {
		return errors.Wrap(errors.ErrInvalidInstruction, "create account")
	}
	d.Lamports = binary.LittleEndian.Uint64(b)
	d.Space = binary.LittleEndian.Uint64(b[8:])
	copy(d.Owner[:], b[16:48])
	return nil
}

func withTag(tag uint32, payload []byte) []byte {
	b := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint32(b, tag)
	copy(b[4:], payload)
	return b
}

func u64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// CreateAccount returns an instruction that moves lamports from funder to
// the new account, allocates space zeroed bytes and assigns it to owner.
// Both accounts must sign.
func CreateAccount(funder, account vault.Pubkey, lamports, space uint64, owner vault.Pubkey) vault.Instruction {
	return vault.Instruction{
		ProgramID: ProgramID,
		Accounts: []vault.AccountMeta{
			vault.Writable(funder, true),
			vault.Writable(account, true),
		},
		Data: CreateAccountData{Lamports: lamports, Space: space, Owner: owner}.Marshal(),
	}
}

// Assign returns an instruction that hands a system account over to owner.
func Assign(account, owner vault.Pubkey) vault.Instruction {
	return vault.Instruction{
		ProgramID: ProgramID,
		Accounts:  []vault.AccountMeta{vault.Writable(account, true)},
		Data:      withTag(InstructionAssign, owner[:]),
	}
}

// Transfer returns an instruction that moves lamports between accounts.
func Transfer(from, to vault.Pubkey, lamports uint64) vault.Instruction {
	return vault.Instruction{
		ProgramID: ProgramID,
		Accounts: []vault.AccountMeta{
			vault.Writable(from, true),
			vault.Writable(to, false),
		},
		Data: withTag(InstructionTransfer, u64(lamports)),
	}
}

// Allocate returns an instruction that grows the data of a system account.
func Allocate(account vault.Pubkey, space uint64) vault.Instruction {
	return vault.Instruction{
		ProgramID: ProgramID,
		Accounts:  []vault.AccountMeta{vault.Writable(account, true)},
		Data:      withTag(InstructionAllocate, u64(space)),
	}
}
