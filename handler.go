package vault

import (
	"encoding/json"
)

// Program processes instructions addressed to its id. This could represent
// "create an account", "transfer tokens" or "lock tokens in an escrow".
//
// A program only sees the accounts listed by the instruction. Whatever it
// changes on them is validated and persisted by the runtime once Process
// returns without an error. Returning an error discards every change made
// by the whole transaction.
type Program interface {
	Process(ctx Context, ic InvokeContext, programID Pubkey, accounts []*AccountInfo, input []byte) error
}

// ProgramFunc adapts a function to the Program interface.
type ProgramFunc func(ctx Context, ic InvokeContext, programID Pubkey, accounts []*AccountInfo, input []byte) error

func (f ProgramFunc) Process(ctx Context, ic InvokeContext, programID Pubkey, accounts []*AccountInfo, input []byte) error {
	return f(ctx, ic, programID, accounts, input)
}

// InvokeContext is the part of the runtime a program can use while
// processing an instruction.
type InvokeContext interface {
	// Rent returns the rent parameters in force.
	Rent() Rent

	// Invoke calls another program. Every account referenced by ix must be
	// present in accounts and the callee cannot get more privileges than
	// the caller holds.
	Invoke(ctx Context, ix Instruction, accounts []*AccountInfo) error

	// InvokeSigned is Invoke where the caller additionally signs for every
	// program address it can derive from one of the seed sets.
	InvokeSigned(ctx Context, ix Instruction, accounts []*AccountInfo, signerSeeds ...[][]byte) error
}

// DeliverResult is the outcome of a successfully processed transaction.
type DeliverResult struct {
	// Log lists the programs that were called, in order, including
	// cross-program invocations.
	Log []string
	// Changed lists every account that was written.
	Changed []Pubkey
}

// Handler processes a whole transaction against a store.
type Handler interface {
	Deliver(ctx Context, store KVStore, tx *Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like authentication, logging or atomic execution.
type Decorator interface {
	Deliver(ctx Context, store KVStore, tx *Tx, next Handler) (*DeliverResult, error)
}

// Registry is an interface to register your program,
// the setup side of a Router
type Registry interface {
	Register(name string, id Pubkey, p Program)
}

// BuiltinRegistry registers programs that have no fixed id and run under
// whatever id they are deployed to.
type BuiltinRegistry interface {
	RegisterBuiltin(name string, p Program)
}

// Options are the genesis options.
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
