package runtime

import (
	"regexp"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
)

var isBuiltinName = regexp.MustCompile(`^[a-z][a-z0-9_]{1,31}$`).MatchString

// Router resolves program ids to programs.
//
// Builtin programs are registered under a name and, optionally, a fixed id.
// Any other id resolves through its account: a deployed program is an
// executable account owned by the native loader whose data holds the name
// of a builtin.
type Router struct {
	byID   map[vault.Pubkey]string
	byName map[string]vault.Program
}

var (
	_ vault.Registry        = (*Router)(nil)
	_ vault.BuiltinRegistry = (*Router)(nil)
)

// NewRouter returns an empty router.
func NewRouter() *Router {
	return &Router{
		byID:   make(map[vault.Pubkey]string),
		byName: make(map[string]vault.Program),
	}
}

// Register adds a builtin program reachable under a fixed id. The program
// can also be deployed under other ids by name. Registering a name or id
// twice panics.
func (r *Router) Register(name string, id vault.Pubkey, p vault.Program) {
	if _, ok := r.byID[id]; ok {
		panic("program id already registered: " + id.String())
	}
	r.RegisterBuiltin(name, p)
	r.byID[id] = name
}

// RegisterBuiltin adds a program that has no fixed id. It runs only under
// the ids it is deployed to.
func (r *Router) RegisterBuiltin(name string, p vault.Program) {
	if !isBuiltinName(name) {
		panic("builtin names must be lowercase alphanumeric: " + name)
	}
	if _, ok := r.byName[name]; ok {
		panic("builtin already registered: " + name)
	}
	r.byName[name] = p
}

// Builtin returns the program registered under name.
func (r *Router) Builtin(name string) (vault.Program, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// Lookup returns the program for id.
func (r *Router) Lookup(db vault.ReadOnlyKVStore, id vault.Pubkey) (vault.Program, error) {
	_, p, err := r.resolve(db, id)
	return p, err
}

// resolve returns the program for id together with its builtin name.
func (r *Router) resolve(db vault.ReadOnlyKVStore, id vault.Pubkey) (string, vault.Program, error) {
	if name, ok := r.byID[id]; ok {
		return name, r.byName[name], nil
	}
	acc, err := LoadAccount(db, id)
	if err != nil {
		return "", nil, err
	}
	if !acc.Executable || acc.Owner != vault.NativeLoaderID {
		return "", nil, errors.Wrapf(errors.ErrIncorrectProgramID, "%s is not a program", id)
	}
	name := string(acc.Data)
	p, ok := r.byName[name]
	if !ok {
		return "", nil, errors.Wrapf(errors.ErrIncorrectProgramID, "%s runs unknown builtin %q", id, name)
	}
	return name, p, nil
}

// ProgramAccount returns the account of a deployed program running the
// given builtin.
func (r *Router) ProgramAccount(builtin string, rent vault.Rent) (*vault.Account, error) {
	if _, ok := r.byName[builtin]; !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "builtin %q", builtin)
	}
	return &vault.Account{
		Lamports:   rent.MinimumBalance(len(builtin)),
		Owner:      vault.NativeLoaderID,
		Executable: true,
		Data:       []byte(builtin),
	}, nil
}
