package escrow

import (
	"encoding/binary"
	"testing"

	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestEscrowLayout(t *testing.T) {
	e := Escrow{
		IsInitialized:    true,
		Initializer:      vaulttest.NewPubkey(),
		DepositAccount:   vaulttest.NewPubkey(),
		ReceivingAccount: vaulttest.NewPubkey(),
		ExpectedAmount:   76,
	}

	raw := make([]byte, EscrowLen)
	assert.Nil(t, e.Pack(raw))
	assert.Equal(t, byte(1), raw[0])
	assert.Equal(t, e.Initializer[:], raw[1:33])
	assert.Equal(t, e.DepositAccount[:], raw[33:65])
	assert.Equal(t, e.ReceivingAccount[:], raw[65:97])
	assert.Equal(t, uint64(76), binary.LittleEndian.Uint64(raw[97:105]))

	got, err := UnpackEscrow(raw)
	assert.Nil(t, err)
	assert.Equal(t, &e, got)
}

func TestUnpackEscrow(t *testing.T) {
	cases := map[string]struct {
		raw     []byte
		wantErr *errors.Error
		wantNew bool
	}{
		"zeroed record is uninitialized": {
			raw:     make([]byte, EscrowLen),
			wantNew: true,
		},
		"invalid flag": {
			raw:     append([]byte{2}, make([]byte, EscrowLen-1)...),
			wantErr: errors.ErrInvalidAccountData,
		},
		"too short": {
			raw:     make([]byte, EscrowLen-1),
			wantErr: errors.ErrInvalidAccountData,
		},
		"too long": {
			raw:     make([]byte, EscrowLen+1),
			wantErr: errors.ErrInvalidAccountData,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := UnpackEscrow(tc.raw)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantNew {
				assert.Equal(t, &Escrow{}, got)
			}
		})
	}
}

func TestPackWrongSize(t *testing.T) {
	var e Escrow
	err := e.Pack(make([]byte, 82))
	assert.IsErr(t, errors.ErrInvalidAccountData, err)
}
