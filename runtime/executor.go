package runtime

import (
	"fmt"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
)

// Executor runs the instructions of a transaction in order. It is the
// final handler of the decorator chain and expects the store to be a
// savepoint, as a failing instruction leaves the writes of the previous
// ones behind.
type Executor struct {
	router  *Router
	metrics *Metrics
}

var _ vault.Handler = (*Executor)(nil)

// NewExecutor returns an executor for the programs of router. metrics may
// be nil.
func NewExecutor(router *Router, metrics *Metrics) *Executor {
	return &Executor{router: router, metrics: metrics}
}

func (e *Executor) Deliver(ctx vault.Context, db vault.KVStore, tx *vault.Tx) (*vault.DeliverResult, error) {
	if len(tx.Instructions) == 0 {
		return nil, errors.Wrap(errors.ErrInput, "transaction without instructions")
	}
	conf, err := LoadConfig(db)
	if err != nil {
		return nil, errors.Wrap(err, "runtime configuration")
	}

	rec := store.NewRecordingStore(db)
	res := &vault.DeliverResult{}
	for i, ix := range tx.Instructions {
		inv := &invocation{
			router:  e.router,
			metrics: e.metrics,
			db:      rec,
			conf:    conf,
			res:     res,
		}
		if err := inv.execute(ctx, ix); err != nil {
			return nil, errors.Wrapf(err, "instruction %d", i)
		}
	}

	for _, key := range rec.Keys() {
		if pk, ok := pubkeyFromKey(key); ok {
			res.Changed = append(res.Changed, pk)
		}
	}
	return res, nil
}

// invocation is the processing of one top level instruction, including
// every cross-program call it makes.
type invocation struct {
	router  *Router
	metrics *Metrics
	db      vault.KVStore
	conf    Config
	res     *vault.DeliverResult
}

func (inv *invocation) logf(format string, args ...interface{}) {
	inv.res.Log = append(inv.res.Log, fmt.Sprintf(format, args...))
}

// execute loads the accounts of ix, runs its program and writes back every
// writable account.
func (inv *invocation) execute(ctx vault.Context, ix vault.Instruction) error {
	signer, writable := mergePrivileges(ix.Accounts)

	loaded := make(map[vault.Pubkey]*vault.Account, len(ix.Accounts))
	var order []vault.Pubkey
	infos := make([]*vault.AccountInfo, len(ix.Accounts))
	for i, m := range ix.Accounts {
		acc, ok := loaded[m.Pubkey]
		if !ok {
			var err error
			if acc, err = LoadAccount(inv.db, m.Pubkey); err != nil {
				return err
			}
			loaded[m.Pubkey] = acc
			order = append(order, m.Pubkey)
		}
		infos[i] = vault.NewAccountInfo(m.Pubkey, signer[m.Pubkey], writable[m.Pubkey], acc)
	}

	if err := inv.run(ctx, ix.ProgramID, infos, ix.Data, 1); err != nil {
		return err
	}

	for _, pk := range order {
		if !writable[pk] {
			continue
		}
		if err := SaveAccount(inv.db, pk, loaded[pk]); err != nil {
			return errors.Wrapf(err, "save %s", pk)
		}
	}
	return nil
}

// run calls the program and verifies its account changes.
func (inv *invocation) run(ctx vault.Context, programID vault.Pubkey, infos []*vault.AccountInfo, input []byte, depth int) error {
	if depth > inv.conf.MaxCallDepth {
		return errors.Wrapf(errors.ErrCallDepth, "depth %d", depth)
	}
	name, program, err := inv.router.resolve(inv.db, programID)
	if err != nil {
		return err
	}

	inv.logf("Program %s invoke [%d]", programID, depth)
	ctx = vault.WithLogInfo(ctx, "program", name, "depth", depth)

	f := newFrame(programID, infos)
	ic := &invokeContext{inv: inv, frame: f, depth: depth}
	err = program.Process(ctx, ic, programID, infos, input)
	if err == nil {
		err = f.verify()
	}
	inv.metrics.observeInstruction(name, err)
	if err != nil {
		inv.logf("Program %s failed: %s", programID, err)
		return err
	}
	inv.logf("Program %s success", programID)
	return nil
}

// mergePrivileges returns the keys marked as signer or writable by any of
// the metas.
func mergePrivileges(metas []vault.AccountMeta) (signer, writable map[vault.Pubkey]bool) {
	signer = make(map[vault.Pubkey]bool)
	writable = make(map[vault.Pubkey]bool)
	for _, m := range metas {
		if m.IsSigner {
			signer[m.Pubkey] = true
		}
		if m.IsWritable {
			writable[m.Pubkey] = true
		}
	}
	return signer, writable
}
