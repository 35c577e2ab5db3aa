package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/vault"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new private key and print its public key.

With -mnemonic the key is derived from a freshly generated bip39 mnemonic,
which is printed as well. Write it down, it is the only way to recover the
key. This command fails if the key file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl  = flKey(fl)
		mnemonicFl = fl.Bool("mnemonic", false, "Derive the key from a new mnemonic.")
		pathFl     = fl.String("path", vault.DefaultDerivationPath, "Derivation path used with -mnemonic.")
	)
	fl.Parse(args)

	key := vault.GenerateKeypair()
	if *mnemonicFl {
		mnemonic, err := vault.NewMnemonic()
		if err != nil {
			return fmt.Errorf("cannot generate mnemonic: %s", err)
		}
		key, err = vault.KeypairFromMnemonic(mnemonic, "", *pathFl)
		if err != nil {
			return fmt.Errorf("cannot derive key: %s", err)
		}
		fmt.Fprintln(output, mnemonic)
	}

	// Never overwrite an existing key, the user must delete it first.
	if err := vault.SaveKeypair(key, *keyPathFl, false); err != nil {
		return fmt.Errorf("cannot save key: %s", err)
	}
	_, err := fmt.Fprintln(output, key.Pubkey())
	return err
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the public key of your private key.
`)
		fl.PrintDefaults()
	}
	keyPathFl := flKey(fl)
	fl.Parse(args)

	key, err := loadKey(*keyPathFl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, key.Pubkey())
	return err
}
