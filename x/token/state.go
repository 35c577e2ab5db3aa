package token

import (
	"encoding/binary"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// Sizes of the account data layouts.
const (
	MintLen    = 82
	AccountLen = 165
)

// AccountState is the state of a token account.
type AccountState uint8

const (
	AccountUninitialized AccountState = 0
	AccountInitialized   AccountState = 1
	AccountFrozen        AccountState = 2
)

// Mint is the state of a mint account.
//
//	offset size field
//	     0   36 mint authority (COption<Pubkey>)
//	    36    8 supply
//	    44    1 decimals
//	    45    1 is initialized
//	    46   36 freeze authority (COption<Pubkey>)
type Mint struct {
	MintAuthority   *vault.Pubkey
	Supply          uint64
	Decimals        uint8
	IsInitialized   bool
	FreezeAuthority *vault.Pubkey
}

// Pack writes the mint into dst, which must be MintLen bytes.
func (m *Mint) Pack(dst []byte) error {
	if len(dst) != MintLen {
		return errors.Wrapf(errors.ErrInvalidAccountData, "mint needs %d bytes, got %d", MintLen, len(dst))
	}
	putPubkeyOption(dst[0:36], m.MintAuthority)
	binary.LittleEndian.PutUint64(dst[36:44], m.Supply)
	dst[44] = m.Decimals
	dst[45] = boolByte(m.IsInitialized)
	putPubkeyOption(dst[46:82], m.FreezeAuthority)
	return nil
}

// UnpackMint decodes mint data without requiring it to be initialized.
func UnpackMint(src []byte) (*Mint, error) {
	if len(src) != MintLen {
		return nil, errors.Wrapf(errors.ErrInvalidAccountData, "mint is %d bytes, got %d", MintLen, len(src))
	}
	var (
		m   Mint
		err error
	)
	if m.MintAuthority, err = pubkeyOption(src[0:36]); err != nil {
		return nil, errors.Wrap(err, "mint authority")
	}
	m.Supply = binary.LittleEndian.Uint64(src[36:44])
	m.Decimals = src[44]
	if m.IsInitialized, err = parseBool(src[45]); err != nil {
		return nil, errors.Wrap(err, "is initialized")
	}
	if m.FreezeAuthority, err = pubkeyOption(src[46:82]); err != nil {
		return nil, errors.Wrap(err, "freeze authority")
	}
	return &m, nil
}

// Account is the state of a token account.
//
//	offset size field
//	     0   32 mint
//	    32   32 owner
//	    64    8 amount
//	    72   36 delegate (COption<Pubkey>)
//	   108    1 state
//	   109   12 is native (COption<u64>)
//	   121    8 delegated amount
//	   129   36 close authority (COption<Pubkey>)
type Account struct {
	Mint            vault.Pubkey
	Owner           vault.Pubkey
	Amount          uint64
	Delegate        *vault.Pubkey
	State           AccountState
	IsNative        *uint64
	DelegatedAmount uint64
	CloseAuthority  *vault.Pubkey
}

// IsInitialized is true for initialized and frozen accounts.
func (a *Account) IsInitialized() bool {
	return a.State != AccountUninitialized
}

// IsFrozen is true if the account cannot move tokens.
func (a *Account) IsFrozen() bool {
	return a.State == AccountFrozen
}

// Pack writes the account into dst, which must be AccountLen bytes.
func (a *Account) Pack(dst []byte) error {
	if len(dst) != AccountLen {
		return errors.Wrapf(errors.ErrInvalidAccountData, "account needs %d bytes, got %d", AccountLen, len(dst))
	}
	copy(dst[0:32], a.Mint[:])
	copy(dst[32:64], a.Owner[:])
	binary.LittleEndian.PutUint64(dst[64:72], a.Amount)
	putPubkeyOption(dst[72:108], a.Delegate)
	dst[108] = byte(a.State)
	putU64Option(dst[109:121], a.IsNative)
	binary.LittleEndian.PutUint64(dst[121:129], a.DelegatedAmount)
	putPubkeyOption(dst[129:165], a.CloseAuthority)
	return nil
}

// UnpackAccount decodes token account data without requiring it to be
// initialized.
func UnpackAccount(src []byte) (*Account, error) {
	if len(src) != AccountLen {
		return nil, errors.Wrapf(errors.ErrInvalidAccountData, "account is %d bytes, got %d", AccountLen, len(src))
	}
	var (
		a   Account
		err error
	)
	copy(a.Mint[:], src[0:32])
	copy(a.Owner[:], src[32:64])
	a.Amount = binary.LittleEndian.Uint64(src[64:72])
	if a.Delegate, err = pubkeyOption(src[72:108]); err != nil {
		return nil, errors.Wrap(err, "delegate")
	}
	if src[108] > byte(AccountFrozen) {
		return nil, errors.Wrapf(errors.ErrInvalidAccountData, "state %d", src[108])
	}
	a.State = AccountState(src[108])
	if a.IsNative, err = u64Option(src[109:121]); err != nil {
		return nil, errors.Wrap(err, "is native")
	}
	a.DelegatedAmount = binary.LittleEndian.Uint64(src[121:129])
	if a.CloseAuthority, err = pubkeyOption(src[129:165]); err != nil {
		return nil, errors.Wrap(err, "close authority")
	}
	return &a, nil
}

// Account options are prefixed with a four byte little endian tag.

func putPubkeyOption(dst []byte, pk *vault.Pubkey) {
	if pk == nil {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	binary.LittleEndian.PutUint32(dst, 1)
	copy(dst[4:], pk[:])
}

func pubkeyOption(src []byte) (*vault.Pubkey, error) {
	switch binary.LittleEndian.Uint32(src) {
	case 0:
		return nil, nil
	case 1:
		var pk vault.Pubkey
		copy(pk[:], src[4:36])
		return &pk, nil
	default:
		return nil, errors.Wrap(errors.ErrInvalidAccountData, "option tag")
	}
}

func putU64Option(dst []byte, v *uint64) {
	if v == nil {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	binary.LittleEndian.PutUint32(dst, 1)
	binary.LittleEndian.PutUint64(dst[4:], *v)
}

func u64Option(src []byte) (*uint64, error) {
	switch binary.LittleEndian.Uint32(src) {
	case 0:
		return nil, nil
	case 1:
		v := binary.LittleEndian.Uint64(src[4:12])
		return &v, nil
	default:
		return nil, errors.Wrap(errors.ErrInvalidAccountData, "option tag")
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func parseBool(b byte) (bool, error) {
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.Wrapf(errors.ErrInvalidAccountData, "bool %d", b)
	}
}
