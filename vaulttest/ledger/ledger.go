/*
Package ledger provides an in memory ledger with the system and token
programs installed, together with fixture helpers to create mints, token
accounts and balances.
*/
package ledger

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/runtime"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/x/system"
	"github.com/iov-one/vault/x/token"
)

// PayerLamports is what the payer of a new ledger holds.
const PayerLamports = 10 * 1000 * 1000 * 1000

// Ledger is a runtime with a funded payer. Helper methods fail the test on
// any error.
type Ledger struct {
	*runtime.Runtime

	t      testing.TB
	router *runtime.Router
	nonce  uint64

	// Payer signs every transaction and pays for created accounts.
	Payer *vault.Keypair
}

// Option configures a Ledger.
type Option func(*config)

type config struct {
	db       vault.CacheableKVStore
	programs []program
	opts     []runtime.Option
}

type program struct {
	name string
	id   vault.Pubkey
	p    vault.Program
}

// WithProgram installs p as a builtin and deploys it under id.
func WithProgram(name string, id vault.Pubkey, p vault.Program) Option {
	return func(c *config) {
		c.programs = append(c.programs, program{name: name, id: id, p: p})
	}
}

// WithStore uses db instead of an in memory store.
func WithStore(db vault.CacheableKVStore) Option {
	return func(c *config) { c.db = db }
}

// WithRuntimeOptions passes opts to the runtime.
func WithRuntimeOptions(opts ...runtime.Option) Option {
	return func(c *config) { c.opts = append(c.opts, opts...) }
}

// New returns a ledger with the system and token programs.
func New(t testing.TB, opts ...Option) *Ledger {
	t.Helper()
	conf := config{db: store.MemStore()}
	for _, o := range opts {
		o(&conf)
	}

	router := runtime.NewRouter()
	system.RegisterRoutes(router)
	token.RegisterRoutes(router)
	for _, p := range conf.programs {
		router.RegisterBuiltin(p.name, p.p)
	}

	l := &Ledger{
		Runtime: runtime.New(conf.db, router, conf.opts...),
		t:       t,
		router:  router,
		Payer:   vault.GenerateKeypair(),
	}
	for _, p := range conf.programs {
		if err := l.Deploy(p.id, p.name); err != nil {
			t.Fatalf("deploy %s: %+v", p.name, err)
		}
	}
	l.Fund(l.Payer.Pubkey(), PayerLamports)
	return l
}

// Exec signs the instructions with the payer and signers and processes
// them as one transaction.
func (l *Ledger) Exec(signers []*vault.Keypair, ixs ...vault.Instruction) (*vault.DeliverResult, error) {
	l.nonce++
	tx := vault.NewTx(l.nonce, ixs...)
	tx.Sign(append([]*vault.Keypair{l.Payer}, signers...)...)
	return l.ProcessTx(context.Background(), tx)
}

// MustExec is Exec failing the test on error.
func (l *Ledger) MustExec(signers []*vault.Keypair, ixs ...vault.Instruction) *vault.DeliverResult {
	l.t.Helper()
	res, err := l.Exec(signers, ixs...)
	if err != nil {
		l.t.Fatalf("transaction failed: %+v", err)
	}
	return res
}

// Fund airdrops lamports to pk.
func (l *Ledger) Fund(pk vault.Pubkey, lamports uint64) {
	l.t.Helper()
	if err := l.Airdrop(pk, lamports); err != nil {
		l.t.Fatalf("airdrop: %+v", err)
	}
}

// Rent returns the rent parameters in force.
func (l *Ledger) Rent() vault.Rent {
	l.t.Helper()
	rent, err := l.Runtime.Rent()
	if err != nil {
		l.t.Fatalf("rent: %+v", err)
	}
	return rent
}

// CreateMint creates a mint controlled by authority.
func (l *Ledger) CreateMint(authority vault.Pubkey, decimals uint8) vault.Pubkey {
	l.t.Helper()
	mint := vault.GenerateKeypair()
	l.MustExec([]*vault.Keypair{mint}, token.NewMintInstructions(l.Payer.Pubkey(), mint.Pubkey(), authority, decimals, l.Rent())...)
	return mint.Pubkey()
}

// CreateTokenAccount creates an empty token account of mint held by
// owner.
func (l *Ledger) CreateTokenAccount(mint, owner vault.Pubkey) vault.Pubkey {
	l.t.Helper()
	account := vault.GenerateKeypair()
	l.MustExec([]*vault.Keypair{account}, token.NewAccountInstructions(l.Payer.Pubkey(), account.Pubkey(), mint, owner, l.Rent())...)
	return account.Pubkey()
}

// MintTo mints amount tokens into dest.
func (l *Ledger) MintTo(mint, dest vault.Pubkey, authority *vault.Keypair, amount uint64) {
	l.t.Helper()
	l.MustExec([]*vault.Keypair{authority}, token.MintTo(mint, dest, authority.Pubkey(), amount))
}

// Account returns the stored account.
func (l *Ledger) Account(pk vault.Pubkey) *vault.Account {
	l.t.Helper()
	acc, err := l.Runtime.Account(pk)
	if err != nil {
		l.t.Fatalf("account %s: %+v", pk, err)
	}
	return acc
}

// Lamports returns the balance of pk.
func (l *Ledger) Lamports(pk vault.Pubkey) uint64 {
	l.t.Helper()
	return l.Account(pk).Lamports
}

// TokenAccount decodes the token account pk.
func (l *Ledger) TokenAccount(pk vault.Pubkey) *token.Account {
	l.t.Helper()
	acc, err := token.DecodeAccount(pk, l.Account(pk))
	if err != nil {
		l.t.Fatalf("token account %s: %+v", pk, err)
	}
	return acc
}

// TokenBalance returns the token amount held by pk.
func (l *Ledger) TokenBalance(pk vault.Pubkey) uint64 {
	l.t.Helper()
	return l.TokenAccount(pk).Amount
}

// Exists returns true if pk holds lamports.
func (l *Ledger) Exists(pk vault.Pubkey) bool {
	l.t.Helper()
	return l.Lamports(pk) > 0
}
