package token

import (
	"encoding/binary"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
)

func TestAccountLayout(t *testing.T) {
	mint := vaulttest.NewPubkey()
	owner := vaulttest.NewPubkey()
	closer := vaulttest.NewPubkey()
	acc := Account{
		Mint:           mint,
		Owner:          owner,
		Amount:         100,
		State:          AccountInitialized,
		CloseAuthority: &closer,
	}

	raw := make([]byte, AccountLen)
	assert.Nil(t, acc.Pack(raw))

	// fixed offsets are part of the format
	assert.Equal(t, mint[:], raw[0:32])
	assert.Equal(t, owner[:], raw[32:64])
	assert.Equal(t, uint64(100), binary.LittleEndian.Uint64(raw[64:72]))
	assert.Equal(t, make([]byte, 36), raw[72:108])
	assert.Equal(t, byte(1), raw[108])
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(raw[129:133]))
	assert.Equal(t, closer[:], raw[133:165])

	got, err := UnpackAccount(raw)
	assert.Nil(t, err)
	assert.Equal(t, &acc, got)

	raw[108] = 3
	_, err = UnpackAccount(raw)
	assert.IsErr(t, errors.ErrInvalidAccountData, err)

	_, err = UnpackAccount(raw[:164])
	assert.IsErr(t, errors.ErrInvalidAccountData, err)
}

func TestMintLayout(t *testing.T) {
	authority := vaulttest.NewPubkey()
	m := Mint{MintAuthority: &authority, Supply: 7, Decimals: 9, IsInitialized: true}

	raw := make([]byte, MintLen)
	assert.Nil(t, m.Pack(raw))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(raw[0:4]))
	assert.Equal(t, authority[:], raw[4:36])
	assert.Equal(t, uint64(7), binary.LittleEndian.Uint64(raw[36:44]))
	assert.Equal(t, byte(9), raw[44])
	assert.Equal(t, byte(1), raw[45])
	assert.Equal(t, make([]byte, 36), raw[46:82])

	got, err := UnpackMint(raw)
	assert.Nil(t, err)
	assert.Equal(t, &m, got)

	raw[45] = 2
	_, err = UnpackMint(raw)
	assert.IsErr(t, errors.ErrInvalidAccountData, err)

	raw[45] = 1
	raw[0] = 2
	_, err = UnpackMint(raw)
	assert.IsErr(t, errors.ErrInvalidAccountData, err)
}

func TestPayload(t *testing.T) {
	owner := vaulttest.NewPubkey()

	cases := map[string]struct {
		raw     []byte
		want    *Payload
		wantErr *errors.Error
	}{
		"transfer": {
			raw:  Transfer(owner, owner, owner, 76).Data,
			want: &Payload{Tag: InstructionTransfer, Amount: 76},
		},
		"set authority": {
			raw:  SetAuthority(owner, owner, AuthorityAccountOwner, &owner).Data,
			want: &Payload{Tag: InstructionSetAuthority, AuthorityType: AuthorityAccountOwner, Authority: &owner},
		},
		"remove authority": {
			raw:  SetAuthority(owner, owner, AuthorityCloseAccount, nil).Data,
			want: &Payload{Tag: InstructionSetAuthority, AuthorityType: AuthorityCloseAccount},
		},
		"initialize account": {
			raw:  InitializeAccount3(owner, owner, owner).Data,
			want: &Payload{Tag: InstructionInitializeAccount3, Owner: owner},
		},
		"initialize mint": {
			raw:  InitializeMint2(owner, 2, owner, nil).Data,
			want: &Payload{Tag: InstructionInitializeMint2, Decimals: 2, Authority: &owner},
		},
		"close": {
			raw:  CloseAccount(owner, owner, owner).Data,
			want: &Payload{Tag: InstructionCloseAccount},
		},
		"empty": {
			raw:     nil,
			wantErr: errors.ErrInvalidInstruction,
		},
		"short amount": {
			raw:     []byte{InstructionTransfer, 1, 2},
			wantErr: errors.ErrInvalidInstruction,
		},
		"unsupported": {
			raw:     []byte{4, 0, 0, 0, 0, 0, 0, 0, 0},
			wantErr: errors.ErrInvalidInstruction,
		},
		"bad option tag": {
			raw:     []byte{InstructionSetAuthority, 2, 7},
			wantErr: errors.ErrInvalidInstruction,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := UnpackPayload(tc.raw)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestProgramID(t *testing.T) {
	assert.Equal(t, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", ProgramID.String())
	assert.Equal(t, vault.PubkeyLength, len(ProgramID.Bytes()))
}
