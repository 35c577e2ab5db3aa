package escrow

import (
	"encoding/binary"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

// EscrowLen is the size of an escrow record.
const EscrowLen = 105

// Escrow holds the terms of one trade.
//
//	offset size field
//	     0    1 is initialized
//	     1   32 initializer
//	    33   32 deposit token account
//	    65   32 receiving token account
//	    97    8 expected amount
type Escrow struct {
	IsInitialized bool
	// Initializer created the escrow and receives the rent of the
	// record and the deposit account once the trade is done.
	Initializer vault.Pubkey
	// DepositAccount holds the locked tokens.
	DepositAccount vault.Pubkey
	// ReceivingAccount is paid by the taker.
	ReceivingAccount vault.Pubkey
	// ExpectedAmount is what the taker must pay.
	ExpectedAmount uint64
}

// Pack writes the record into dst, which must be EscrowLen bytes.
func (e *Escrow) Pack(dst []byte) error {
	if len(dst) != EscrowLen {
		return errors.Wrapf(errors.ErrInvalidAccountData, "escrow needs %d bytes, got %d", EscrowLen, len(dst))
	}
	dst[0] = 0
	if e.IsInitialized {
		dst[0] = 1
	}
	copy(dst[1:33], e.Initializer[:])
	copy(dst[33:65], e.DepositAccount[:])
	copy(dst[65:97], e.ReceivingAccount[:])
	binary.LittleEndian.PutUint64(dst[97:105], e.ExpectedAmount)
	return nil
}

// UnpackEscrow decodes a record without requiring it to be initialized.
func UnpackEscrow(src []byte) (*Escrow, error) {
	if len(src) != EscrowLen {
		return nil, errors.Wrapf(errors.ErrInvalidAccountData, "escrow is %d bytes, got %d", EscrowLen, len(src))
	}
	var e Escrow
	switch src[0] {
	case 0:
	case 1:
		e.IsInitialized = true
	default:
		return nil, errors.Wrapf(errors.ErrInvalidAccountData, "is initialized flag %d", src[0])
	}
	copy(e.Initializer[:], src[1:33])
	copy(e.DepositAccount[:], src[33:65])
	copy(e.ReceivingAccount[:], src[65:97])
	e.ExpectedAmount = binary.LittleEndian.Uint64(src[97:105])
	return &e, nil
}
