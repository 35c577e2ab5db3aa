package token

import (
	"encoding/binary"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// ProgramID is the id the token program is registered under.
var ProgramID = vault.MustPubkey("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

// Instruction tags, as numbered by the SPL token program.
const (
	InstructionTransfer           uint8 = 3
	InstructionSetAuthority       uint8 = 6
	InstructionMintTo             uint8 = 7
	InstructionCloseAccount       uint8 = 9
	InstructionInitializeAccount3 uint8 = 18
	InstructionInitializeMint2    uint8 = 20
)

// AuthorityType selects which authority SetAuthority changes.
type AuthorityType uint8

const (
	AuthorityMintTokens    AuthorityType = 0
	AuthorityFreezeAccount AuthorityType = 1
	AuthorityAccountOwner  AuthorityType = 2
	AuthorityCloseAccount  AuthorityType = 3
)

func (t AuthorityType) String() string {
	switch t {
	case AuthorityMintTokens:
		return "MintTokens"
	case AuthorityFreezeAccount:
		return "FreezeAccount"
	case AuthorityAccountOwner:
		return "AccountOwner"
	case AuthorityCloseAccount:
		return "CloseAccount"
	default:
		return "Unknown"
	}
}

// Payload is a decoded instruction. Only the fields of the instruction
// selected by Tag are set.
type Payload struct {
	Tag             uint8
	Amount          uint64
	Decimals        uint8
	Authority       *vault.Pubkey
	FreezeAuthority *vault.Pubkey
	AuthorityType   AuthorityType
	Owner           vault.Pubkey
}

// Marshal encodes the payload the way the SPL token program does.
// Instruction options use a single byte tag.
func (p Payload) Marshal() []byte {
	b := []byte{p.Tag}
	switch p.Tag {
	case InstructionTransfer, InstructionMintTo:
		b = appendU64(b, p.Amount)
	case InstructionSetAuthority:
		b = append(b, byte(p.AuthorityType))
		b = appendPubkeyOption(b, p.Authority)
	case InstructionInitializeAccount3:
		b = append(b, p.Owner[:]...)
	case InstructionInitializeMint2:
		b = append(b, p.Decimals)
		var authority vault.Pubkey
		if p.Authority != nil {
			authority = *p.Authority
		}
		b = append(b, authority[:]...)
		b = appendPubkeyOption(b, p.FreezeAuthority)
	}
	return b
}

// UnpackPayload decodes instruction data.
func UnpackPayload(data []byte) (*Payload, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidInstruction, "empty")
	}
	p := &Payload{Tag: data[0]}
	rest := data[1:]
	var err error
	switch p.Tag {
	case InstructionTransfer, InstructionMintTo:
		if len(rest) < 8 {
			return nil, errors.Wrap(errors.ErrInvalidInstruction, "amount")
		}
		p.Amount = binary.LittleEndian.Uint64(rest)
	case InstructionSetAuthority:
		if len(rest) < 2 {
			return nil, errors.Wrap(errors.ErrInvalidInstruction, "set authority")
		}
		p.AuthorityType = AuthorityType(rest[0])
		if p.Authority, _, err = readPubkeyOption(rest[1:]); err != nil {
			return nil, err
		}
	case InstructionCloseAccount:
	case InstructionInitializeAccount3:
		if len(rest) < vault.PubkeyLength {
			return nil, errors.Wrap(errors.ErrInvalidInstruction, "owner")
		}
		copy(p.Owner[:], rest)
	case InstructionInitializeMint2:
		if len(rest) < 1+vault.PubkeyLength+1 {
			return nil, errors.Wrap(errors.ErrInvalidInstruction, "initialize mint")
		}
		p.Decimals = rest[0]
		var authority vault.Pubkey
		copy(authority[:], rest[1:33])
		p.Authority = &authority
		if p.FreezeAuthority, _, err = readPubkeyOption(rest[33:]); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrapf(errors.ErrInvalidInstruction, "unsupported instruction %d", p.Tag)
	}
	return p, nil
}

func appendU64(b []byte, v uint64) []byte {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], v)
	return append(b, raw[:]...)
}

func appendPubkeyOption(b []byte, pk *vault.Pubkey) []byte {
	if pk == nil {
		return append(b, 0)
	}
	b = append(b, 1)
	return append(b, pk[:]...)
}

func readPubkeyOption(b []byte) (*vault.Pubkey, []byte, error) {
	if len(b) == 0 {
		return nil, nil, errors.Wrap(errors.ErrInvalidInstruction, "option tag")
	}
	switch b[0] {
	case 0:
		return nil, b[1:], nil
	case 1:
		if len(b) < 1+vault.PubkeyLength {
			return nil, nil, errors.Wrap(errors.ErrInvalidInstruction, "option value")
		}
		var pk vault.Pubkey
		copy(pk[:], b[1:])
		return &pk, b[1+vault.PubkeyLength:], nil
	default:
		return nil, nil, errors.Wrapf(errors.ErrInvalidInstruction, "option tag %d", b[0])
	}
}

// InitializeMint2 returns an instruction that initializes a mint account.
func InitializeMint2(mint vault.Pubkey, decimals uint8, mintAuthority vault.Pubkey, freezeAuthority *vault.Pubkey) vault.Instruction {
	return vault.Instruction{
		ProgramID: ProgramID,
		Accounts:  []vault.AccountMeta{vault.Writable(mint, false)},
		Data: Payload{
			Tag:             InstructionInitializeMint2,
			Decimals:        decimals,
			Authority:       &mintAuthority,
			FreezeAuthority: freezeAuthority,
		}.Marshal(),
	}
}

// InitializeAccount3 returns an instruction that initializes a token
// account of mint held by owner.
func InitializeAccount3(account, mint, owner vault.Pubkey) vault.Instruction {
	return vault.Instruction{
		ProgramID: ProgramID,
		Accounts: []vault.AccountMeta{
			vault.Writable(account, false),
			vault.ReadOnly(mint, false),
		},
		Data: Payload{Tag: InstructionInitializeAccount3, Owner: owner}.Marshal(),
	}
}

// MintTo returns an instruction that creates amount new tokens in dest.
func MintTo(mint, dest, authority vault.Pubkey, amount uint64) vault.Instruction {
	return vault.Instruction{
		ProgramID: ProgramID,
		Accounts: []vault.AccountMeta{
			vault.Writable(mint, false),
			vault.Writable(dest, false),
			vault.ReadOnly(authority, true),
		},
		Data: Payload{Tag: InstructionMintTo, Amount: amount}.Marshal(),
	}
}

// Transfer returns an instruction that moves amount tokens from source to
// dest. authority must be the owner of source.
func Transfer(source, dest, authority vault.Pubkey, amount uint64) vault.Instruction {
	return vault.Instruction{
		ProgramID: ProgramID,
		Accounts: []vault.AccountMeta{
			vault.Writable(source, false),
			vault.Writable(dest, false),
			vault.ReadOnly(authority, true),
		},
		Data: Payload{Tag: InstructionTransfer, Amount: amount}.Marshal(),
	}
}

// SetAuthority returns an instruction that replaces an authority of a mint
// or token account. A nil newAuthority removes it where that is allowed.
func SetAuthority(target, current vault.Pubkey, kind AuthorityType, newAuthority *vault.Pubkey) vault.Instruction {
	return vault.Instruction{
		ProgramID: ProgramID,
		Accounts: []vault.AccountMeta{
			vault.Writable(target, false),
			vault.ReadOnly(current, true),
		},
		Data: Payload{Tag: InstructionSetAuthority, AuthorityType: kind, Authority: newAuthority}.Marshal(),
	}
}

// CloseAccount returns an instruction that removes an empty token account
// and sends its lamports to dest.
func CloseAccount(account, dest, authority vault.Pubkey) vault.Instruction {
	return vault.Instruction{
		ProgramID: ProgramID,
		Accounts: []vault.AccountMeta{
			vault.Writable(account, false),
			vault.Writable(dest, false),
			vault.ReadOnly(authority, true),
		},
		Data: Payload{Tag: InstructionCloseAccount}.Marshal(),
	}
}
