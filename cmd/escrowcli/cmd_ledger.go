package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/runtime"
	"github.com/iov-one/vault/x/escrow"
	"github.com/iov-one/vault/x/token"
)

func cmdGenesis(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Initialize the ledger from a genesis file.

The runtime configuration is taken from the "conf.runtime" section, accounts
listed under "accounts" are funded and builtins listed under "programs" are
deployed. The first deployed escrow program is written to the deploy file.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl      = flDB(fl)
		deployFl  = flDeployFile(fl)
		genesisFl = fl.String("genesis", "genesis.json", "Path to the genesis file.")
	)
	fl.Parse(args)

	gen, err := runtime.LoadGenesis(*genesisFl)
	if err != nil {
		return fmt.Errorf("cannot load genesis: %s", err)
	}
	n, err := openNode(*dbFl)
	if err != nil {
		return err
	}
	defer n.Close()

	init := runtime.Initializer{Router: n.router}
	if err := init.FromGenesis(gen.AppOptions, n.db); err != nil {
		return fmt.Errorf("cannot initialize ledger: %s", err)
	}

	var programs []runtime.GenesisProgram
	if err := gen.AppOptions.ReadOptions("programs", &programs); err != nil {
		return fmt.Errorf("cannot read programs: %s", err)
	}
	for _, p := range programs {
		if p.Builtin != escrow.BuiltinName {
			continue
		}
		if err := saveDeployment(*deployFl, &deployment{EscrowProgramID: p.ID}); err != nil {
			return err
		}
		fmt.Fprintf(output, "escrow program %s\n", p.ID)
		break
	}
	return nil
}

func cmdAirdrop(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create lamports out of thin air and credit them to an account. Without -to
the account of your key is funded.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl       = flDB(fl)
		keyPathFl  = flKey(fl)
		toFl       = flPubkey(fl, "to", "", "Account to fund.")
		lamportsFl = fl.Uint64("lamports", 1000*1000*1000, "Amount of lamports.")
	)
	fl.Parse(args)

	to := *toFl
	if to.IsZero() {
		key, err := loadKey(*keyPathFl)
		if err != nil {
			return err
		}
		to = key.Pubkey()
	}

	n, err := openNode(*dbFl)
	if err != nil {
		return err
	}
	defer n.Close()

	if err := n.Airdrop(to, *lamportsFl); err != nil {
		return fmt.Errorf("cannot airdrop: %s", err)
	}
	acc, err := n.Account(to)
	if err != nil {
		return fmt.Errorf("cannot load account: %s", err)
	}
	_, err = fmt.Fprintf(output, "%s %d\n", to, acc.Lamports)
	return err
}

func cmdDeploy(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Deploy the escrow program and remember its id in the deploy file. A random
id is used unless -id is given.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl     = flDB(fl)
		deployFl = flDeployFile(fl)
		idFl     = flPubkey(fl, "id", "", "Program id to deploy to.")
	)
	fl.Parse(args)

	id := *idFl
	if id.IsZero() {
		id = vault.GenerateKeypair().Pubkey()
	}

	n, err := openNode(*dbFl)
	if err != nil {
		return err
	}
	defer n.Close()

	if err := n.Deploy(id, escrow.BuiltinName); err != nil {
		return fmt.Errorf("cannot deploy: %s", err)
	}
	if err := saveDeployment(*deployFl, &deployment{EscrowProgramID: id}); err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, id)
	return err
}

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the balance of an account. Token accounts print the token amount and
the mint, any other account its lamports.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl      = flDB(fl)
		accountFl = flPubkey(fl, "account", "", "Account to inspect.")
	)
	fl.Parse(args)

	if accountFl.IsZero() {
		return fmt.Errorf("account is required")
	}

	n, err := openNode(*dbFl)
	if err != nil {
		return err
	}
	defer n.Close()

	acc, err := n.Account(*accountFl)
	if err != nil {
		return fmt.Errorf("cannot load account: %s", err)
	}
	if acc.IsOwnedBy(token.ProgramID) && len(acc.Data) == token.AccountLen {
		ta, err := token.DecodeAccount(*accountFl, acc)
		if err != nil {
			return fmt.Errorf("cannot decode token account: %s", err)
		}
		_, err = fmt.Fprintf(output, "%d %s\n", ta.Amount, ta.Mint)
		return err
	}
	_, err = fmt.Fprintf(output, "%d lamports\n", acc.Lamports)
	return err
}
