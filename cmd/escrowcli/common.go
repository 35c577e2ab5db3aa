package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/iov-one/vault"
	"github.com/iov-one/vault/runtime"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/x/escrow"
	"github.com/iov-one/vault/x/system"
	"github.com/iov-one/vault/x/token"
	"github.com/tendermint/tendermint/libs/log"
)

// node is a runtime over the local ledger database.
type node struct {
	*runtime.Runtime
	db     *store.LevelDB
	router *runtime.Router
}

func newRouter() *runtime.Router {
	r := runtime.NewRouter()
	system.RegisterRoutes(r)
	token.RegisterRoutes(r)
	escrow.RegisterRoutes(r)
	return r
}

// openNode opens the ledger in dir, creating it if needed. Close the node
// when done, LevelDB allows a single process only.
func openNode(dir string) (*node, error) {
	if err := os.MkdirAll(filepath.Dir(dir), 0700); err != nil {
		return nil, fmt.Errorf("cannot create ledger directory: %s", err)
	}
	db, err := store.OpenLevelDB(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger: %s", err)
	}
	logger := log.NewFilter(log.NewTMLogger(log.NewSyncWriter(os.Stderr)), log.AllowError())
	router := newRouter()
	return &node{
		Runtime: runtime.New(db, router, runtime.WithLogger(logger.With("module", "escrowcli"))),
		db:      db,
		router:  router,
	}, nil
}

func (n *node) Close() error {
	return n.db.Close()
}

// submit signs the instructions with all signers, processes them as one
// transaction and writes a report of the outcome to out.
func (n *node) submit(out io.Writer, signers []*vault.Keypair, ixs ...vault.Instruction) error {
	tx := vault.NewTx(uint64(time.Now().UnixNano()), ixs...)
	tx.Sign(signers...)
	res, err := n.ProcessTx(context.Background(), tx)
	if err != nil {
		return fmt.Errorf("transaction %X failed: %s", tx.ID(), err)
	}
	fmt.Fprintf(out, "transaction %X\n", tx.ID())
	for _, line := range res.Log {
		fmt.Fprintf(out, "\t%s\n", line)
	}
	for _, pk := range res.Changed {
		fmt.Fprintf(out, "\tchanged %s\n", pk)
	}
	return nil
}

func loadKey(path string) (*vault.Keypair, error) {
	k, err := vault.LoadKeypair(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load key: %s", err)
	}
	return k, nil
}

// deployment is what the deploy command remembers about deployed
// programs.
type deployment struct {
	EscrowProgramID vault.Pubkey `toml:"escrow_program_id"`
}

func loadDeployment(path string) (*deployment, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot read deploy file, run deploy first: %s", err)
	}
	var d deployment
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return nil, fmt.Errorf("cannot decode deploy file: %s", err)
	}
	return &d, nil
}

func saveDeployment(path string, d *deployment) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(d); err != nil {
		return fmt.Errorf("cannot encode deploy file: %s", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("cannot create deploy file directory: %s", err)
	}
	if err := ioutil.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("cannot write deploy file: %s", err)
	}
	return nil
}

// escrowProgramID returns id unless it is zero, in which case the id is
// read from the deploy file.
func escrowProgramID(id vault.Pubkey, deployFile string) (vault.Pubkey, error) {
	if !id.IsZero() {
		return id, nil
	}
	d, err := loadDeployment(deployFile)
	if err != nil {
		return vault.Pubkey{}, err
	}
	return d.EscrowProgramID, nil
}
