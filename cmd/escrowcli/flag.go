package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/vault"
)

// flPubkey returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flPubkey(fl *flag.FlagSet, name, defaultVal, usage string) *vault.Pubkey {
	var pk vault.Pubkey
	if defaultVal != "" {
		var err error
		pk, err = vault.ParsePubkey(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q pubkey flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var((*flagPubkey)(&pk), name, usage)
	return &pk
}

type flagPubkey vault.Pubkey

func (f *flagPubkey) String() string {
	if f == nil || vault.Pubkey(*f).IsZero() {
		return ""
	}
	return vault.Pubkey(*f).String()
}

func (f *flagPubkey) Set(raw string) error {
	pk, err := vault.ParsePubkey(raw)
	if err != nil {
		return err
	}
	*f = flagPubkey(pk)
	return nil
}

// flKey registers the -key flag every command that signs uses.
func flKey(fl *flag.FlagSet) *string {
	return fl.String("key", defaultKey(),
		"Path to the key file that transactions are signed with. You can use ESCROWCLI_KEY environment variable to set it.")
}

// flDB registers the -db flag.
func flDB(fl *flag.FlagSet) *string {
	return fl.String("db", defaultDB(),
		"Directory of the ledger database. You can use ESCROWCLI_DB environment variable to set it.")
}

// flDeployFile registers the -deploy flag.
func flDeployFile(fl *flag.FlagSet) *string {
	return fl.String("deploy", defaultDeployFile(),
		"File the escrow program id is kept in. You can use ESCROWCLI_DEPLOY environment variable to set it.")
}
