package runtime

import (
	"fmt"
	"sync"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Runtime processes transactions against a ledger. Transactions are
// processed one at a time; each one is applied completely or not at all.
type Runtime struct {
	mu      sync.Mutex
	db      vault.CacheableKVStore
	router  *Router
	handler vault.Handler
	logger  log.Logger
	metrics *Metrics
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger passed to programs.
func WithLogger(logger log.Logger) Option {
	return func(r *Runtime) { r.logger = logger }
}

// WithMetrics enables transaction and instruction metrics.
func WithMetrics(m *Metrics) Option {
	return func(r *Runtime) { r.metrics = m }
}

// New returns a runtime that executes the programs of router against db.
func New(db vault.CacheableKVStore, router *Router, opts ...Option) *Runtime {
	r := &Runtime{
		db:     db,
		router: router,
		logger: vault.DefaultLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.handler = ChainDecorators(
		NewLogging(),
		NewRecovery(),
		r.metrics,
		NewSignatures(),
		NewSavepoint(),
	).WithHandler(NewExecutor(router, r.metrics))
	return r
}

// ProcessTx executes all instructions of tx. Nothing is written if any of
// them fails.
func (r *Runtime) ProcessTx(ctx vault.Context, tx *vault.Tx) (*vault.DeliverResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := tx.ID()
	ctx = vault.WithLogger(ctx, r.logger.With("tx", fmt.Sprintf("%X", id)))
	ctx = vault.WithTxID(ctx, id)
	return r.handler.Deliver(ctx, r.db, tx)
}

// Account returns the current state of the account.
func (r *Runtime) Account(pk vault.Pubkey) (*vault.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return LoadAccount(r.db, pk)
}

// Accounts lists the accounts owned by owner, or all accounts when owner is
// nil.
func (r *Runtime) Accounts(owner *vault.Pubkey) ([]KeyedAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ListAccounts(r.db, owner)
}

// Airdrop credits lamports to an account out of thin air. It exists for
// local ledgers and tests.
func (r *Runtime) Airdrop(pk vault.Pubkey, lamports uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cache := r.db.CacheWrap()
	defer cache.Discard()

	acc, err := LoadAccount(cache, pk)
	if err != nil {
		return err
	}
	if acc.Executable {
		return errors.Wrapf(errors.ErrAccountModified, "%s is a program", pk)
	}
	if acc.Lamports, err = addLamports(acc.Lamports, lamports); err != nil {
		return err
	}
	if err := SaveAccount(cache, pk, acc); err != nil {
		return err
	}
	return cache.Write()
}

// Deploy makes the builtin program available under id.
func (r *Runtime) Deploy(id vault.Pubkey, builtin string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return deploy(r.db, r.router, id, builtin)
}

func deploy(db vault.KVStore, router *Router, id vault.Pubkey, builtin string) error {
	conf, err := LoadConfig(db)
	if err != nil {
		return err
	}
	if ok, err := AccountExists(db, id); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	} else if ok {
		return errors.Wrapf(errors.ErrAlreadyInUse, "program %s", id)
	}
	acc, err := router.ProgramAccount(builtin, conf.Rent)
	if err != nil {
		return err
	}
	return SaveAccount(db, id, acc)
}

// Config returns the runtime configuration in force.
func (r *Runtime) Config() (Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return LoadConfig(r.db)
}

// Rent returns the rent parameters in force.
func (r *Runtime) Rent() (vault.Rent, error) {
	conf, err := r.Config()
	return conf.Rent, err
}
