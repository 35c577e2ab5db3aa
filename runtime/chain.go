package runtime

import (
	"reflect"

	"github.com/iov-one/vault"
)

// Decorators holds a chain of decorators, not yet resolved by a Handler
type Decorators struct {
	chain []vault.Decorator
}

/*
ChainDecorators takes a chain of decorators,
and upon adding a final Handler (the Executor),
returns a Handler that will execute this whole stack.

	runtime.ChainDecorators(
	  runtime.NewLogging(),
	  runtime.NewRecovery(),
	  runtime.NewSignatures(),
	  runtime.NewSavepoint(),
	).WithHandler(
	  runtime.NewExecutor(router, nil),
	)
*/
func ChainDecorators(chain ...vault.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a copy of d extended with the non nil decorators of chain.
func (d Decorators) Chain(chain ...vault.Decorator) Decorators {
	out := make([]vault.Decorator, 0, len(d.chain)+len(chain))
	out = append(out, d.chain...)
	for _, dec := range chain {
		if !isNilDecorator(dec) {
			out = append(out, dec)
		}
	}
	return Decorators{chain: out}
}

// isNilDecorator reports plain nil as well as a nil pointer stored in the
// interface, which optional decorators such as a disabled *Metrics are.
func isNilDecorator(d vault.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler resolves the stack and returns a concrete Handler
// that will pass through the chain of decorators before calling
// the final Handler.
func (d Decorators) WithHandler(h vault.Handler) vault.Handler {
	// start wrapping the handler from last decorator to first one
	// as the top of the chain is understood to be executed first
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = step{d: d.chain[i], next: h}
	}
	return h
}

// step captures one step executing a decorator around a
// specific Handler. Simplified version of a closure.
type step struct {
	d    vault.Decorator
	next vault.Handler
}

var _ vault.Handler = step{}

// Deliver passes the handler into the decorator, implements Handler
func (s step) Deliver(ctx vault.Context, store vault.KVStore, tx *vault.Tx) (*vault.DeliverResult, error) {
	return s.d.Deliver(ctx, store, tx, s.next)
}
