package token_test

import (
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
	"github.com/iov-one/vault/vaulttest/ledger"
	"github.com/iov-one/vault/x/system"
	"github.com/iov-one/vault/x/token"
)

// fixture is a mint with two funded accounts of alice and one of bob.
type fixture struct {
	l         *ledger.Ledger
	authority *vault.Keypair
	alice     *vault.Keypair
	bob       *vault.Keypair
	mint      vault.Pubkey
	aliceAcc  vault.Pubkey
	bobAcc    vault.Pubkey
}

func newFixture(t *testing.T) *fixture {
	l := ledger.New(t)
	f := &fixture{
		l:         l,
		authority: vaulttest.NewKey(),
		alice:     vaulttest.NewKey(),
		bob:       vaulttest.NewKey(),
	}
	f.mint = l.CreateMint(f.authority.Pubkey(), 0)
	f.aliceAcc = l.CreateTokenAccount(f.mint, f.alice.Pubkey())
	f.bobAcc = l.CreateTokenAccount(f.mint, f.bob.Pubkey())
	l.MintTo(f.mint, f.aliceAcc, f.authority, 100)
	return f
}

func TestTransfer(t *testing.T) {
	cases := map[string]struct {
		ix        func(f *fixture) vault.Instruction
		signers   func(f *fixture) []*vault.Keypair
		wantErr   *errors.Error
		wantAlice uint64
		wantBob   uint64
	}{
		"owner moves tokens": {
			ix:        func(f *fixture) vault.Instruction { return token.Transfer(f.aliceAcc, f.bobAcc, f.alice.Pubkey(), 76) },
			signers:   func(f *fixture) []*vault.Keypair { return []*vault.Keypair{f.alice} },
			wantAlice: 24,
			wantBob:   76,
		},
		"insufficient funds": {
			ix:        func(f *fixture) vault.Instruction { return token.Transfer(f.aliceAcc, f.bobAcc, f.alice.Pubkey(), 101) },
			signers:   func(f *fixture) []*vault.Keypair { return []*vault.Keypair{f.alice} },
			wantErr:   errors.ErrInsufficientFunds,
			wantAlice: 100,
		},
		"wrong authority": {
			ix:        func(f *fixture) vault.Instruction { return token.Transfer(f.aliceAcc, f.bobAcc, f.bob.Pubkey(), 10) },
			signers:   func(f *fixture) []*vault.Keypair { return []*vault.Keypair{f.bob} },
			wantErr:   token.ErrOwnerMismatch,
			wantAlice: 100,
		},
		"authority did not sign": {
			ix: func(f *fixture) vault.Instruction {
				ix := token.Transfer(f.aliceAcc, f.bobAcc, f.alice.Pubkey(), 10)
				ix.Accounts[2].IsSigner = false
				return ix
			},
			signers:   func(f *fixture) []*vault.Keypair { return nil },
			wantErr:   errors.ErrMissingSignature,
			wantAlice: 100,
		},
		"transfer to self is a no-op": {
			ix: func(f *fixture) vault.Instruction {
				return token.Transfer(f.aliceAcc, f.aliceAcc, f.alice.Pubkey(), 60)
			},
			signers:   func(f *fixture) []*vault.Keypair { return []*vault.Keypair{f.alice} },
			wantAlice: 100,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.l.Exec(tc.signers(f), tc.ix(f))
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, tc.wantAlice, f.l.TokenBalance(f.aliceAcc))
			assert.Equal(t, tc.wantBob, f.l.TokenBalance(f.bobAcc))
		})
	}
}

func TestTransferMintMismatch(t *testing.T) {
	f := newFixture(t)
	other := f.l.CreateMint(f.authority.Pubkey(), 0)
	otherAcc := f.l.CreateTokenAccount(other, f.bob.Pubkey())

	_, err := f.l.Exec([]*vault.Keypair{f.alice}, token.Transfer(f.aliceAcc, otherAcc, f.alice.Pubkey(), 1))
	assert.IsErr(t, token.ErrMintMismatch, err)
}

func TestTransferRequiresTokenAccounts(t *testing.T) {
	f := newFixture(t)
	plain := vaulttest.NewPubkey()
	f.l.Fund(plain, 1)

	_, err := f.l.Exec([]*vault.Keypair{f.alice}, token.Transfer(f.aliceAcc, plain, f.alice.Pubkey(), 1))
	assert.IsErr(t, errors.ErrIncorrectProgramID, err)
}

func TestMintTo(t *testing.T) {
	f := newFixture(t)

	_, err := f.l.Exec([]*vault.Keypair{f.bob}, token.MintTo(f.mint, f.bobAcc, f.bob.Pubkey(), 5))
	assert.IsErr(t, token.ErrOwnerMismatch, err)

	// no more minting once the authority is removed
	f.l.MustExec([]*vault.Keypair{f.authority}, token.SetAuthority(f.mint, f.authority.Pubkey(), token.AuthorityMintTokens, nil))
	_, err = f.l.Exec([]*vault.Keypair{f.authority}, token.MintTo(f.mint, f.bobAcc, f.authority.Pubkey(), 5))
	assert.IsErr(t, token.ErrFixedSupply, err)

	m, err := token.DecodeMint(f.mint, f.l.Account(f.mint))
	assert.Nil(t, err)
	assert.Equal(t, uint64(100), m.Supply)
}

func TestSetAuthority(t *testing.T) {
	f := newFixture(t)
	newOwner := vaulttest.NewKey()

	// unsupported kinds
	_, err := f.l.Exec([]*vault.Keypair{f.alice}, token.SetAuthority(f.aliceAcc, f.alice.Pubkey(), token.AuthorityMintTokens, nil))
	assert.IsErr(t, token.ErrAuthorityTypeNotSupported, err)
	_, err = f.l.Exec([]*vault.Keypair{f.authority}, token.SetAuthority(f.mint, f.authority.Pubkey(), token.AuthorityFreezeAccount, nil))
	assert.IsErr(t, token.ErrMintCannotFreeze, err)

	// the owner cannot be removed
	_, err = f.l.Exec([]*vault.Keypair{f.alice}, token.SetAuthority(f.aliceAcc, f.alice.Pubkey(), token.AuthorityAccountOwner, nil))
	assert.IsErr(t, errors.ErrInvalidInstruction, err)

	next := newOwner.Pubkey()
	f.l.MustExec([]*vault.Keypair{f.alice}, token.SetAuthority(f.aliceAcc, f.alice.Pubkey(), token.AuthorityAccountOwner, &next))
	assert.Equal(t, next, f.l.TokenAccount(f.aliceAcc).Owner)

	// the previous owner lost control
	_, err = f.l.Exec([]*vault.Keypair{f.alice}, token.Transfer(f.aliceAcc, f.bobAcc, f.alice.Pubkey(), 1))
	assert.IsErr(t, token.ErrOwnerMismatch, err)
	f.l.MustExec([]*vault.Keypair{newOwner}, token.Transfer(f.aliceAcc, f.bobAcc, next, 1))
	assert.Equal(t, uint64(1), f.l.TokenBalance(f.bobAcc))
}

func TestCloseAccount(t *testing.T) {
	f := newFixture(t)
	dest := vaulttest.NewPubkey()
	rent := f.l.Lamports(f.aliceAcc)

	_, err := f.l.Exec([]*vault.Keypair{f.alice}, token.CloseAccount(f.aliceAcc, dest, f.alice.Pubkey()))
	assert.IsErr(t, token.ErrNonNativeHasBalance, err)

	_, err = f.l.Exec([]*vault.Keypair{f.bob}, token.CloseAccount(f.bobAcc, f.bobAcc, f.bob.Pubkey()))
	assert.IsErr(t, errors.ErrInvalidAccountData, err)

	f.l.MustExec([]*vault.Keypair{f.bob}, token.CloseAccount(f.bobAcc, dest, f.bob.Pubkey()))
	assert.Equal(t, false, f.l.Exists(f.bobAcc))
	assert.Equal(t, rent, f.l.Lamports(dest))

	// a close authority replaces the owner
	closer := vaulttest.NewKey()
	pk := closer.Pubkey()
	f.l.MustExec([]*vault.Keypair{f.alice}, token.SetAuthority(f.aliceAcc, f.alice.Pubkey(), token.AuthorityCloseAccount, &pk))
	aliceDest := vaulttest.NewPubkey()
	other := f.l.CreateTokenAccount(f.mint, f.alice.Pubkey())
	f.l.MustExec([]*vault.Keypair{f.alice}, token.Transfer(f.aliceAcc, other, f.alice.Pubkey(), 100))
	_, err = f.l.Exec([]*vault.Keypair{f.alice}, token.CloseAccount(f.aliceAcc, aliceDest, f.alice.Pubkey()))
	assert.IsErr(t, token.ErrOwnerMismatch, err)
	f.l.MustExec([]*vault.Keypair{closer}, token.CloseAccount(f.aliceAcc, aliceDest, pk))
	assert.Equal(t, rent, f.l.Lamports(aliceDest))
}

func TestInitialize(t *testing.T) {
	f := newFixture(t)

	// a second initialization is rejected
	_, err := f.l.Exec(nil, token.InitializeAccount3(f.aliceAcc, f.mint, f.bob.Pubkey()))
	assert.IsErr(t, errors.ErrAlreadyInUse, err)
	_, err = f.l.Exec(nil, token.InitializeMint2(f.mint, 0, f.bob.Pubkey(), nil))
	assert.IsErr(t, errors.ErrAlreadyInUse, err)

	// accounts must be rent exempt
	poor := vaulttest.NewKey()
	_, err = f.l.Exec([]*vault.Keypair{poor},
		system.CreateAccount(f.l.Payer.Pubkey(), poor.Pubkey(), 1000, token.AccountLen, token.ProgramID),
		token.InitializeAccount3(poor.Pubkey(), f.mint, f.bob.Pubkey()),
	)
	assert.IsErr(t, errors.ErrNotRentExempt, err)
	assert.Equal(t, false, f.l.Exists(poor.Pubkey()))

	// the mint must be a mint
	acc := vaulttest.NewKey()
	_, err = f.l.Exec([]*vault.Keypair{acc}, token.NewAccountInstructions(f.l.Payer.Pubkey(), acc.Pubkey(), f.aliceAcc, f.bob.Pubkey(), f.l.Rent())...)
	assert.IsErr(t, token.ErrInvalidMint, err)
}
