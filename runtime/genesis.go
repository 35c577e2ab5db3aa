package runtime

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/gconf"
)

// Genesis is the file format of the initial ledger state.
type Genesis struct {
	AppOptions vault.Options `json:"app_options"`
}

// LoadGenesis reads a genesis file.
func LoadGenesis(path string) (Genesis, error) {
	var gen Genesis
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return gen, errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return gen, errors.Wrapf(errors.ErrInput, "genesis file: %s", err)
	}
	return gen, nil
}

// ChainInitializers lets you initialize many extensions with one function.
func ChainInitializers(inits ...vault.Initializer) vault.Initializer {
	return chainInitializers(inits)
}

type chainInitializers []vault.Initializer

// FromGenesis passes opts to all initializers in order, aborting at the
// first error.
func (c chainInitializers) FromGenesis(opts vault.Options, db vault.KVStore) error {
	for _, i := range c {
		if err := i.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}

// GenesisAccount funds an account at genesis.
type GenesisAccount struct {
	Pubkey   vault.Pubkey `json:"pubkey"`
	Lamports uint64       `json:"lamports"`
}

// GenesisProgram deploys a builtin at genesis.
type GenesisProgram struct {
	ID      vault.Pubkey `json:"id"`
	Builtin string       `json:"builtin"`
}

// Initializer fulfils the vault.Initializer interface to load the runtime
// configuration, funded accounts and deployed programs from a genesis
// file.
type Initializer struct {
	Router *Router
}

var _ vault.Initializer = (*Initializer)(nil)

// FromGenesis stores the "conf.runtime" section, or the default
// configuration when it is missing, then funds the "accounts" and deploys
// the "programs".
func (i *Initializer) FromGenesis(opts vault.Options, db vault.KVStore) error {
	conf := DefaultConfig()
	err := gconf.InitConfig(db, opts, ConfigPkg, &conf)
	switch {
	case errors.ErrNotFound.Is(err):
		conf = DefaultConfig()
		if err := gconf.Save(db, ConfigPkg, &conf); err != nil {
			return err
		}
	case err != nil:
		return err
	}

	var accounts []GenesisAccount
	if err := opts.ReadOptions("accounts", &accounts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	var programs []GenesisProgram
	if err := opts.ReadOptions("programs", &programs); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	var errs error
	seen := make(map[vault.Pubkey]bool)
	for n, a := range accounts {
		if a.Lamports == 0 {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrInvalidAmount, "account #%d: zero lamports", n))
		}
		if seen[a.Pubkey] {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrAlreadyInUse, "account #%d: %s", n, a.Pubkey))
		}
		seen[a.Pubkey] = true
	}
	for n, p := range programs {
		if _, ok := i.Router.Builtin(p.Builtin); !ok {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrNotFound, "program #%d: builtin %q", n, p.Builtin))
		}
		if seen[p.ID] {
			errs = errors.Append(errs, errors.Wrapf(errors.ErrAlreadyInUse, "program #%d: %s", n, p.ID))
		}
		seen[p.ID] = true
	}
	if errs != nil {
		return errs
	}

	for _, a := range accounts {
		acc := &vault.Account{Lamports: a.Lamports, Owner: vault.SystemProgramID}
		if err := SaveAccount(db, a.Pubkey, acc); err != nil {
			return err
		}
	}
	for _, p := range programs {
		if err := deploy(db, i.Router, p.ID, p.Builtin); err != nil {
			return errors.Wrapf(err, "program %s", p.ID)
		}
	}
	return nil
}
