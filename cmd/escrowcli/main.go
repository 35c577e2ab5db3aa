package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/vault"
)

// commands is a register of all available commands. The name is matched
// with the first argument given.
//
// A command function receives stdin, stdout and the command line arguments
// without the program and the command name. It parses the arguments itself
// using the flag package and writes only to the given output. Use os.Stderr
// for error messages.
//
// All commands work on the same local ledger, a LevelDB database, so a
// trade can be played through step by step:
//
//	$ escrowcli genesis -genesis genesis.json
//	$ escrowcli deploy
//	$ escrowcli init-escrow -deposit <account> -receiving <account> -amount 76
//	$ escrowcli exchange -key taker.key -escrow <record> \
//	    -sending <account> -receiving <account> -amount 76
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"airdrop":              cmdAirdrop,
	"authority":            cmdAuthority,
	"balance":              cmdBalance,
	"create-mint":          cmdCreateMint,
	"create-token-account": cmdCreateTokenAccount,
	"deploy":               cmdDeploy,
	"exchange":             cmdExchange,
	"genesis":              cmdGenesis,
	"init-escrow":          cmdInitEscrow,
	"keyaddr":              cmdKeyaddr,
	"keygen":               cmdKeygen,
	"mint-to":              cmdMintTo,
	"show-escrow":          cmdShowEscrow,
	"version":              cmdVersion,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for a local escrow ledger.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, vault.Version())
	return err
}
