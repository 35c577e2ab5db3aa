package escrow_test

import (
	"fmt"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
	"github.com/iov-one/vault/vaulttest/ledger"
	"github.com/iov-one/vault/x/escrow"
	"github.com/iov-one/vault/x/system"
	"github.com/iov-one/vault/x/token"
	. "github.com/smartystreets/goconvey/convey"
)

var escrowID = vault.MustPubkey("Escrow1111111111111111111111111111111111111")

// fixture is alice offering 100 X for 76 Y and bob holding Y.
type fixture struct {
	t        testing.TB
	l        *ledger.Ledger
	minter   *vault.Keypair
	alice    *vault.Keypair
	bob      *vault.Keypair
	record   *vault.Keypair
	mintX    vault.Pubkey
	mintY    vault.Pubkey
	deposit  vault.Pubkey
	aliceY   vault.Pubkey
	bobX     vault.Pubkey
	bobY     vault.Pubkey
	bobFunds uint64
}

func newFixture(t testing.TB, bobFunds uint64) *fixture {
	l := ledger.New(t, ledger.WithProgram(escrow.BuiltinName, escrowID, escrow.Program{}))
	f := &fixture{
		t:        t,
		l:        l,
		minter:   vaulttest.NewKey(),
		alice:    vaulttest.NewKey(),
		bob:      vaulttest.NewKey(),
		record:   vaulttest.NewKey(),
		bobFunds: bobFunds,
	}
	f.mintX = l.CreateMint(f.minter.Pubkey(), 0)
	f.mintY = l.CreateMint(f.minter.Pubkey(), 0)
	f.deposit = l.CreateTokenAccount(f.mintX, f.alice.Pubkey())
	f.aliceY = l.CreateTokenAccount(f.mintY, f.alice.Pubkey())
	f.bobX = l.CreateTokenAccount(f.mintX, f.bob.Pubkey())
	f.bobY = l.CreateTokenAccount(f.mintY, f.bob.Pubkey())
	l.MintTo(f.mintX, f.deposit, f.minter, 100)
	if bobFunds > 0 {
		l.MintTo(f.mintY, f.bobY, f.minter, bobFunds)
	}
	return f
}

func (f *fixture) initInstructions(amount uint64) []vault.Instruction {
	return escrow.NewEscrowInstructions(escrowID, f.l.Payer.Pubkey(), f.alice.Pubkey(), f.deposit, f.aliceY, f.record.Pubkey(), amount, f.l.Rent())
}

func (f *fixture) open(t testing.TB) {
	f.l.MustExec([]*vault.Keypair{f.alice, f.record}, f.initInstructions(76)...)
}

func (f *fixture) exchangeAccounts() escrow.ExchangeAccounts {
	return escrow.ExchangeAccounts{
		Taker:                f.bob.Pubkey(),
		TakerSending:         f.bobY,
		TakerReceiving:       f.bobX,
		Deposit:              f.deposit,
		Initializer:          f.alice.Pubkey(),
		InitializerReceiving: f.aliceY,
		Escrow:               f.record.Pubkey(),
	}
}

func (f *fixture) exchangeInstruction(programID vault.Pubkey, a escrow.ExchangeAccounts, amount uint64) vault.Instruction {
	f.t.Helper()
	ix, err := escrow.Exchange(programID, a, amount)
	assert.Nil(f.t, err)
	return ix
}

func (f *fixture) exchange(amount uint64) (*vault.DeliverResult, error) {
	return f.l.Exec([]*vault.Keypair{f.bob}, f.exchangeInstruction(escrowID, f.exchangeAccounts(), amount))
}

func TestInitEscrow(t *testing.T) {
	f := newFixture(t, 100)
	rent := f.l.Rent()
	f.open(t)

	acc := f.l.Account(f.record.Pubkey())
	assert.Equal(t, escrowID, acc.Owner)
	assert.Equal(t, rent.MinimumBalance(escrow.EscrowLen), acc.Lamports)

	rec, err := escrow.DecodeEscrow(escrowID, f.record.Pubkey(), acc)
	assert.Nil(t, err)
	want := &escrow.Escrow{
		IsInitialized:    true,
		Initializer:      f.alice.Pubkey(),
		DepositAccount:   f.deposit,
		ReceivingAccount: f.aliceY,
		ExpectedAmount:   76,
	}
	assert.Equal(t, want, rec)

	deposit := f.l.TokenAccount(f.deposit)
	assert.Equal(t, escrow.MustAuthority(escrowID).Address, deposit.Owner)
	assert.Equal(t, uint64(100), deposit.Amount)

	// the initializer lost control over the deposit
	_, err = f.l.Exec([]*vault.Keypair{f.alice}, token.Transfer(f.deposit, f.bobX, f.alice.Pubkey(), 1))
	assert.IsErr(t, token.ErrOwnerMismatch, err)

	// a record is initialized once
	again := escrow.InitEscrow(escrowID, f.alice.Pubkey(), f.deposit, f.aliceY, f.record.Pubkey(), 1)
	_, err = f.l.Exec([]*vault.Keypair{f.alice}, again)
	assert.IsErr(t, errors.ErrAlreadyInUse, err)
	rec, err = escrow.DecodeEscrow(escrowID, f.record.Pubkey(), f.l.Account(f.record.Pubkey()))
	assert.Nil(t, err)
	assert.Equal(t, uint64(76), rec.ExpectedAmount)
}

func TestInitEscrowFailures(t *testing.T) {
	cases := map[string]struct {
		mutate  func(f *fixture, ixs []vault.Instruction) []vault.Instruction
		signers func(f *fixture) []*vault.Keypair
		wantErr *errors.Error
	}{
		"initializer did not sign": {
			mutate: func(f *fixture, ixs []vault.Instruction) []vault.Instruction {
				ixs[1].Accounts[0].IsSigner = false
				return ixs
			},
			signers: func(f *fixture) []*vault.Keypair { return []*vault.Keypair{f.record} },
			wantErr: errors.ErrMissingSignature,
		},
		"record not rent exempt": {
			mutate: func(f *fixture, ixs []vault.Instruction) []vault.Instruction {
				lamports := f.l.Rent().MinimumBalance(escrow.EscrowLen) - 1
				ixs[0] = system.CreateAccount(f.l.Payer.Pubkey(), f.record.Pubkey(), lamports, escrow.EscrowLen, escrowID)
				return ixs
			},
			wantErr: errors.ErrNotRentExempt,
		},
		"record owned by another program": {
			mutate: func(f *fixture, ixs []vault.Instruction) []vault.Instruction {
				lamports := f.l.Rent().MinimumBalance(escrow.EscrowLen)
				ixs[0] = system.CreateAccount(f.l.Payer.Pubkey(), f.record.Pubkey(), lamports, escrow.EscrowLen, token.ProgramID)
				return ixs
			},
			wantErr: errors.ErrIncorrectProgramID,
		},
		"record of the wrong size": {
			mutate: func(f *fixture, ixs []vault.Instruction) []vault.Instruction {
				lamports := f.l.Rent().MinimumBalance(escrow.EscrowLen)
				ixs[0] = system.CreateAccount(f.l.Payer.Pubkey(), f.record.Pubkey(), lamports, escrow.EscrowLen-1, escrowID)
				return ixs
			},
			wantErr: errors.ErrInvalidAccountData,
		},
		"wrong token program": {
			mutate: func(f *fixture, ixs []vault.Instruction) []vault.Instruction {
				ixs[1].Accounts[4].Pubkey = system.ProgramID
				return ixs
			},
			wantErr: errors.ErrIncorrectProgramID,
		},
		"deposit held by somebody else": {
			mutate: func(f *fixture, ixs []vault.Instruction) []vault.Instruction {
				ixs[1] = escrow.InitEscrow(escrowID, f.alice.Pubkey(), f.bobX, f.aliceY, f.record.Pubkey(), 76)
				return ixs
			},
			wantErr: token.ErrOwnerMismatch,
		},
		"receiving is not a token account": {
			mutate: func(f *fixture, ixs []vault.Instruction) []vault.Instruction {
				ixs[1] = escrow.InitEscrow(escrowID, f.alice.Pubkey(), f.deposit, f.alice.Pubkey(), f.record.Pubkey(), 76)
				return ixs
			},
			wantErr: errors.ErrIncorrectProgramID,
		},
		"truncated instruction data": {
			mutate: func(f *fixture, ixs []vault.Instruction) []vault.Instruction {
				ixs[1].Data = ixs[1].Data[:5]
				return ixs
			},
			wantErr: errors.ErrInvalidInstruction,
		},
		"missing accounts": {
			mutate: func(f *fixture, ixs []vault.Instruction) []vault.Instruction {
				ixs[1].Accounts = ixs[1].Accounts[:4]
				return ixs
			},
			wantErr: errors.ErrNotEnoughAccountKeys,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			f := newFixture(t, 100)
			signers := []*vault.Keypair{f.alice, f.record}
			if tc.signers != nil {
				signers = tc.signers(f)
			}
			_, err := f.l.Exec(signers, tc.mutate(f, f.initInstructions(76))...)
			assert.IsErr(t, tc.wantErr, err)

			// nothing of the transaction is left behind
			assert.Equal(t, false, f.l.Exists(f.record.Pubkey()))
			assert.Equal(t, f.alice.Pubkey(), f.l.TokenAccount(f.deposit).Owner)
		})
	}
}

func TestExchangeFailures(t *testing.T) {
	cases := map[string]struct {
		bobFunds uint64
		amount   uint64
		accounts func(f *fixture, a *escrow.ExchangeAccounts)
		mutate   func(ix *vault.Instruction)
		unsigned bool
		wantErr  *errors.Error
	}{
		"declared amount differs": {
			amount:  75,
			wantErr: escrow.ErrExpectedAmountMismatch,
		},
		"declared amount higher": {
			amount:  77,
			wantErr: escrow.ErrExpectedAmountMismatch,
		},
		"unknown deposit account": {
			accounts: func(f *fixture, a *escrow.ExchangeAccounts) { a.Deposit = f.bobX },
			wantErr:  errors.ErrInvalidAccountData,
		},
		"unknown initializer": {
			accounts: func(f *fixture, a *escrow.ExchangeAccounts) { a.Initializer = f.bob.Pubkey() },
			wantErr:  errors.ErrInvalidAccountData,
		},
		"unknown receiving account": {
			accounts: func(f *fixture, a *escrow.ExchangeAccounts) { a.InitializerReceiving = f.bobY },
			wantErr:  errors.ErrInvalidAccountData,
		},
		"record was never initialized": {
			accounts: func(f *fixture, a *escrow.ExchangeAccounts) { a.Escrow = vaulttest.NewPubkey() },
			wantErr:  errors.ErrUninitializedAccount,
		},
		"foreign authority": {
			mutate:  func(ix *vault.Instruction) { ix.Accounts[8].Pubkey = vaulttest.NewPubkey() },
			wantErr: errors.ErrInvalidAccountData,
		},
		"wrong token program": {
			mutate:  func(ix *vault.Instruction) { ix.Accounts[7].Pubkey = system.ProgramID },
			wantErr: errors.ErrIncorrectProgramID,
		},
		"taker did not sign": {
			mutate:   func(ix *vault.Instruction) { ix.Accounts[0].IsSigner = false },
			unsigned: true,
			wantErr:  errors.ErrMissingSignature,
		},
		"taker cannot pay": {
			bobFunds: 50,
			wantErr:  errors.ErrInsufficientFunds,
		},
		// The taker's payment succeeds before these fail, and is rolled
		// back with the rest of the transaction.
		"release into an account of the wrong mint": {
			accounts: func(f *fixture, a *escrow.ExchangeAccounts) { a.TakerReceiving = f.bobY },
			wantErr:  token.ErrMintMismatch,
		},
		"release into the deposit itself": {
			accounts: func(f *fixture, a *escrow.ExchangeAccounts) { a.TakerReceiving = f.deposit },
			wantErr:  token.ErrNonNativeHasBalance,
		},
		"missing authority account": {
			mutate:  func(ix *vault.Instruction) { ix.Accounts = ix.Accounts[:8] },
			wantErr: errors.ErrNotEnoughAccountKeys,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			bobFunds := tc.bobFunds
			if bobFunds == 0 {
				bobFunds = 100
			}
			amount := tc.amount
			if amount == 0 {
				amount = 76
			}
			f := newFixture(t, bobFunds)
			f.open(t)

			a := f.exchangeAccounts()
			if tc.accounts != nil {
				tc.accounts(f, &a)
			}
			ix := f.exchangeInstruction(escrowID, a, amount)
			if tc.mutate != nil {
				tc.mutate(&ix)
			}
			signers := []*vault.Keypair{f.bob}
			if tc.unsigned {
				signers = nil
			}
			_, err := f.l.Exec(signers, ix)
			assert.IsErr(t, tc.wantErr, err)

			assert.Equal(t, uint64(100), f.l.TokenBalance(f.deposit))
			assert.Equal(t, escrow.MustAuthority(escrowID).Address, f.l.TokenAccount(f.deposit).Owner)
			assert.Equal(t, uint64(0), f.l.TokenBalance(f.aliceY))
			assert.Equal(t, uint64(0), f.l.TokenBalance(f.bobX))
			assert.Equal(t, bobFunds, f.l.TokenBalance(f.bobY))
			assert.Equal(t, true, f.l.Exists(f.record.Pubkey()))
		})
	}
}

func TestExchange(t *testing.T) {
	Convey("Given alice locked 100 X asking for 76 Y", t, func() {
		f := newFixture(t, 100)
		rent := f.l.Rent()
		f.open(t)
		authority := escrow.MustAuthority(escrowID)

		Convey("When bob takes the trade", func() {
			res, err := f.exchange(76)
			So(err, ShouldBeNil)

			Convey("Both legs are settled", func() {
				So(f.l.TokenBalance(f.aliceY), ShouldEqual, uint64(76))
				So(f.l.TokenBalance(f.bobX), ShouldEqual, uint64(100))
				So(f.l.TokenBalance(f.bobY), ShouldEqual, uint64(24))
			})

			Convey("The deposit and the record are gone and alice got their rent", func() {
				So(f.l.Exists(f.deposit), ShouldBeFalse)
				So(f.l.Exists(f.record.Pubkey()), ShouldBeFalse)
				So(f.l.Account(f.record.Pubkey()).Data, ShouldBeEmpty)
				want := rent.MinimumBalance(escrow.EscrowLen) + rent.MinimumBalance(token.AccountLen)
				So(f.l.Lamports(f.alice.Pubkey()), ShouldEqual, want)
			})

			Convey("The token program was called three times", func() {
				So(res.Log, ShouldContain, fmt.Sprintf("Program %s invoke [1]", escrowID))
				calls := 0
				for _, line := range res.Log {
					if line == fmt.Sprintf("Program %s invoke [2]", token.ProgramID) {
						calls++
					}
				}
				So(calls, ShouldEqual, 3)
				So(changed(res, f.record.Pubkey()), ShouldBeTrue)
			})

			Convey("Replaying the exchange fails", func() {
				_, err := f.exchange(76)
				So(errors.ErrUninitializedAccount.Is(err), ShouldBeTrue)
				So(f.l.TokenBalance(f.aliceY), ShouldEqual, uint64(76))
				So(f.l.TokenBalance(f.bobY), ShouldEqual, uint64(24))
			})
		})

		Convey("When bob offers less", func() {
			_, err := f.exchange(70)
			So(escrow.ErrExpectedAmountMismatch.Is(err), ShouldBeTrue)

			Convey("The deposit stays locked", func() {
				So(f.l.TokenBalance(f.deposit), ShouldEqual, uint64(100))
				So(f.l.TokenAccount(f.deposit).Owner, ShouldResemble, authority.Address)
				So(f.l.TokenBalance(f.bobY), ShouldEqual, uint64(100))
			})

			Convey("The trade can still be taken", func() {
				_, err := f.exchange(76)
				So(err, ShouldBeNil)
				So(f.l.TokenBalance(f.bobX), ShouldEqual, uint64(100))
			})
		})

		Convey("When the same program runs under another id", func() {
			otherID := vaulttest.NewPubkey()
			So(f.l.Deploy(otherID, escrow.BuiltinName), ShouldBeNil)
			_, err := f.l.Exec([]*vault.Keypair{f.bob}, f.exchangeInstruction(otherID, f.exchangeAccounts(), 76))

			Convey("It does not accept records of the first", func() {
				So(errors.ErrIncorrectProgramID.Is(err), ShouldBeTrue)
				So(f.l.TokenBalance(f.deposit), ShouldEqual, uint64(100))
			})
		})
	})
}

func changed(res *vault.DeliverResult, pk vault.Pubkey) bool {
	for _, c := range res.Changed {
		if c == pk {
			return true
		}
	}
	return false
}
