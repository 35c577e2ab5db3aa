package escrow

import (
	"encoding/binary"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/x/token"
)

const (
	InstructionInitEscrow uint8 = 0
	InstructionExchange   uint8 = 1
)

// payloadLen is the opcode followed by the amount.
const payloadLen = 9

// Payload is the decoded instruction data. Both instructions carry an
// amount.
type Payload struct {
	Tag    uint8
	Amount uint64
}

// Marshal encodes the payload.
func (p Payload) Marshal() []byte {
	b := make([]byte, payloadLen)
	b[0] = p.Tag
	binary.LittleEndian.PutUint64(b[1:], p.Amount)
	return b
}

// UnpackPayload decodes instruction data. Bytes after the amount are
// ignored.
func UnpackPayload(data []byte) (*Payload, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidInstruction, "empty")
	}
	switch data[0] {
	case InstructionInitEscrow, InstructionExchange:
	default:
		return nil, errors.Wrapf(errors.ErrInvalidInstruction, "unknown opcode %d", data[0])
	}
	if len(data) < payloadLen {
		return nil, errors.Wrapf(errors.ErrInvalidInstruction, "amount needs 8 bytes, got %d", len(data)-1)
	}
	return &Payload{Tag: data[0], Amount: binary.LittleEndian.Uint64(data[1:payloadLen])}, nil
}

// InitEscrow returns an instruction that records the terms in escrow and
// hands the deposit account over to the program authority. amount is what
// the initializer expects to receive on receiving.
func InitEscrow(programID, initializer, deposit, receiving, escrow vault.Pubkey, amount uint64) vault.Instruction {
	return vault.Instruction{
		ProgramID: programID,
		Accounts: []vault.AccountMeta{
			vault.ReadOnly(initializer, true),
			vault.Writable(deposit, false),
			vault.ReadOnly(receiving, false),
			vault.Writable(escrow, false),
			vault.ReadOnly(token.ProgramID, false),
		},
		Data: Payload{Tag: InstructionInitEscrow, Amount: amount}.Marshal(),
	}
}

// ExchangeAccounts lists the accounts an exchange works on.
type ExchangeAccounts struct {
	Taker                vault.Pubkey
	TakerSending         vault.Pubkey
	TakerReceiving       vault.Pubkey
	Deposit              vault.Pubkey
	Initializer          vault.Pubkey
	InitializerReceiving vault.Pubkey
	Escrow               vault.Pubkey
}

// Exchange returns an instruction that takes the trade recorded in
// a.Escrow. amount must match the amount the initializer expects. It fails
// only when no authority can be derived for programID.
func Exchange(programID vault.Pubkey, a ExchangeAccounts, amount uint64) (vault.Instruction, error) {
	authority, err := FindAuthority(programID)
	if err != nil {
		return vault.Instruction{}, err
	}
	return vault.Instruction{
		ProgramID: programID,
		Accounts: []vault.AccountMeta{
			vault.ReadOnly(a.Taker, true),
			vault.Writable(a.TakerSending, false),
			vault.Writable(a.TakerReceiving, false),
			vault.Writable(a.Deposit, false),
			vault.Writable(a.Initializer, false),
			vault.Writable(a.InitializerReceiving, false),
			vault.Writable(a.Escrow, false),
			vault.ReadOnly(token.ProgramID, false),
			vault.ReadOnly(authority.Address, false),
		},
		Data: Payload{Tag: InstructionExchange, Amount: amount}.Marshal(),
	}, nil
}
