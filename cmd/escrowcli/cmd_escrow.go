package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/x/escrow"
	"github.com/iov-one/vault/x/token"
)

func cmdInitEscrow(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Lock the tokens of a deposit account and ask for an amount of another token
in return. Your key must hold the deposit account and pays for the escrow
record. The record id is printed first; a taker needs it to exchange.

There is no way to cancel an escrow. The deposit stays locked until a taker
accepts the trade.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl        = flDB(fl)
		deployFl    = flDeployFile(fl)
		keyPathFl   = flKey(fl)
		programFl   = flPubkey(fl, "program", "", "Escrow program id, read from the deploy file by default.")
		depositFl   = flPubkey(fl, "deposit", "", "Token account holding the tokens to lock.")
		receivingFl = flPubkey(fl, "receiving", "", "Token account to receive the payment on.")
		amountFl    = fl.Uint64("amount", 0, "Amount of tokens expected in return.")
	)
	fl.Parse(args)

	if depositFl.IsZero() || receivingFl.IsZero() {
		return fmt.Errorf("deposit and receiving accounts are required")
	}
	programID, err := escrowProgramID(*programFl, *deployFl)
	if err != nil {
		return err
	}
	key, err := loadKey(*keyPathFl)
	if err != nil {
		return err
	}

	n, err := openNode(*dbFl)
	if err != nil {
		return err
	}
	defer n.Close()

	rent, err := n.Rent()
	if err != nil {
		return fmt.Errorf("cannot load rent: %s", err)
	}
	record := vault.GenerateKeypair()
	ixs := escrow.NewEscrowInstructions(programID, key.Pubkey(), key.Pubkey(), *depositFl, *receivingFl, record.Pubkey(), *amountFl, rent)
	fmt.Fprintln(output, record.Pubkey())
	return n.submit(output, []*vault.Keypair{key, record}, ixs...)
}

func cmdExchange(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Take the trade of an escrow. Your key pays the expected amount from the
sending account and receives the locked tokens on the receiving account.
The remaining accounts are read from the escrow record.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl        = flDB(fl)
		deployFl    = flDeployFile(fl)
		keyPathFl   = flKey(fl)
		programFl   = flPubkey(fl, "program", "", "Escrow program id, read from the deploy file by default.")
		escrowFl    = flPubkey(fl, "escrow", "", "Escrow record to take.")
		sendingFl   = flPubkey(fl, "sending", "", "Token account paying the initializer.")
		receivingFl = flPubkey(fl, "receiving", "", "Token account receiving the locked tokens.")
		amountFl    = fl.Uint64("amount", 0, "Amount you pay, it must match the escrow terms.")
	)
	fl.Parse(args)

	if escrowFl.IsZero() || sendingFl.IsZero() || receivingFl.IsZero() {
		return fmt.Errorf("escrow, sending and receiving accounts are required")
	}
	programID, err := escrowProgramID(*programFl, *deployFl)
	if err != nil {
		return err
	}
	key, err := loadKey(*keyPathFl)
	if err != nil {
		return err
	}

	n, err := openNode(*dbFl)
	if err != nil {
		return err
	}
	defer n.Close()

	acc, err := n.Account(*escrowFl)
	if err != nil {
		return fmt.Errorf("cannot load escrow: %s", err)
	}
	state, err := escrow.DecodeEscrow(programID, *escrowFl, acc)
	if err != nil {
		return fmt.Errorf("cannot decode escrow: %s", err)
	}
	ix, err := escrow.Exchange(programID, escrow.ExchangeAccounts{
		Taker:                key.Pubkey(),
		TakerSending:         *sendingFl,
		TakerReceiving:       *receivingFl,
		Deposit:              state.DepositAccount,
		Initializer:          state.Initializer,
		InitializerReceiving: state.ReceivingAccount,
		Escrow:               *escrowFl,
	}, *amountFl)
	if err != nil {
		return fmt.Errorf("cannot build exchange: %s", err)
	}
	return n.submit(output, []*vault.Keypair{key}, ix)
}

// escrowView is the printed form of an escrow record.
type escrowView struct {
	Escrow           vault.Pubkey `json:"escrow"`
	Initializer      vault.Pubkey `json:"initializer"`
	DepositAccount   vault.Pubkey `json:"deposit_account"`
	ReceivingAccount vault.Pubkey `json:"receiving_account"`
	ExpectedAmount   uint64       `json:"expected_amount"`
	Locked           uint64       `json:"locked"`
}

func cmdShowEscrow(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the terms of an open escrow as JSON, together with the amount of
tokens locked in the deposit account.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl      = flDB(fl)
		deployFl  = flDeployFile(fl)
		programFl = flPubkey(fl, "program", "", "Escrow program id, read from the deploy file by default.")
		escrowFl  = flPubkey(fl, "escrow", "", "Escrow record to show.")
	)
	fl.Parse(args)

	programID, err := escrowProgramID(*programFl, *deployFl)
	if err != nil {
		return err
	}

	n, err := openNode(*dbFl)
	if err != nil {
		return err
	}
	defer n.Close()

	acc, err := n.Account(*escrowFl)
	if err != nil {
		return fmt.Errorf("cannot load escrow: %s", err)
	}
	state, err := escrow.DecodeEscrow(programID, *escrowFl, acc)
	if err != nil {
		return fmt.Errorf("cannot decode escrow: %s", err)
	}
	view := escrowView{
		Escrow:           *escrowFl,
		Initializer:      state.Initializer,
		DepositAccount:   state.DepositAccount,
		ReceivingAccount: state.ReceivingAccount,
		ExpectedAmount:   state.ExpectedAmount,
	}
	if depositAcc, err := n.Account(state.DepositAccount); err == nil {
		if deposit, err := token.DecodeAccount(state.DepositAccount, depositAcc); err == nil {
			view.Locked = deposit.Amount
		}
	}

	raw, err := json.MarshalIndent(view, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot encode escrow: %s", err)
	}
	_, err = fmt.Fprintln(output, string(raw))
	return err
}

func cmdAuthority(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the program authority of the escrow program and its bump seed. Locked
deposit accounts are held by this address.
`)
		fl.PrintDefaults()
	}
	var (
		deployFl  = flDeployFile(fl)
		programFl = flPubkey(fl, "program", "", "Escrow program id, read from the deploy file by default.")
	)
	fl.Parse(args)

	programID, err := escrowProgramID(*programFl, *deployFl)
	if err != nil {
		return err
	}
	a, err := escrow.FindAuthority(programID)
	if err != nil {
		return fmt.Errorf("cannot derive authority: %s", err)
	}
	_, err = fmt.Fprintf(output, "%s %d\n", a.Address, a.Bump)
	return err
}
