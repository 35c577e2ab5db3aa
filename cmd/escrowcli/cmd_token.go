package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/x/token"
)

func cmdCreateMint(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a new mint. Your key pays for the account and becomes the mint
authority unless -authority is given. The mint id is printed first.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl        = flDB(fl)
		keyPathFl   = flKey(fl)
		authorityFl = flPubkey(fl, "authority", "", "Mint authority, defaults to your key.")
		decimalsFl  = fl.Uint("decimals", 0, "Number of decimals.")
	)
	fl.Parse(args)

	if *decimalsFl > 255 {
		return fmt.Errorf("decimals must fit in a byte")
	}
	key, err := loadKey(*keyPathFl)
	if err != nil {
		return err
	}
	authority := *authorityFl
	if authority.IsZero() {
		authority = key.Pubkey()
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
	mint := vault.GenerateKeypair()
	ixs := token.NewMintInstructions(key.Pubkey(), mint.Pubkey(), authority, uint8(*decimalsFl), rent)
	fmt.Fprintln(output, mint.Pubkey())
	return n.submit(output, []*vault.Keypair{key, mint}, ixs...)
}

func cmdCreateTokenAccount(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a new token account of a mint. Your key pays for the account and
holds it unless -owner is given. The account id is printed first.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl      = flDB(fl)
		keyPathFl = flKey(fl)
		mintFl    = flPubkey(fl, "mint", "", "Mint of the account.")
		ownerFl   = flPubkey(fl, "owner", "", "Owner of the account, defaults to your key.")
	)
	fl.Parse(args)

	if mintFl.IsZero() {
		return fmt.Errorf("mint is required")
	}
	key, err := loadKey(*keyPathFl)
	if err != nil {
		return err
	}
	owner := *ownerFl
	if owner.IsZero() {
		owner = key.Pubkey()
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
	account := vault.GenerateKeypair()
	ixs := token.NewAccountInstructions(key.Pubkey(), account.Pubkey(), *mintFl, owner, rent)
	fmt.Fprintln(output, account.Pubkey())
	return n.submit(output, []*vault.Keypair{key, account}, ixs...)
}

func cmdMintTo(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Mint new tokens into a token account. Your key must be the mint authority.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl      = flDB(fl)
		keyPathFl = flKey(fl)
		mintFl    = flPubkey(fl, "mint", "", "Mint to create tokens of.")
		toFl      = flPubkey(fl, "to", "", "Token account receiving the tokens.")
		amountFl  = fl.Uint64("amount", 0, "Number of tokens.")
	)
	fl.Parse(args)

	if mintFl.IsZero() || toFl.IsZero() {
		return fmt.Errorf("mint and destination are required")
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

	return n.submit(output, []*vault.Keypair{key}, token.MintTo(*mintFl, *toFl, key.Pubkey(), *amountFl))
}
