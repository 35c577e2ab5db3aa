package vaulttest

import "github.com/iov-one/vault"

// Decorator is a mock implementation of the vault.Decorator interface.
//
// Set DeliverErr to force an error response. If it is not set then the
// wrapped handler is called and its result returned. Each call is counted,
// regardless of the result.
type Decorator struct {
	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ vault.Decorator = (*Decorator)(nil)

func (d *Decorator) Deliver(ctx vault.Context, db vault.KVStore, tx *vault.Tx, next vault.Handler) (*vault.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CallCount() int {
	return d.deliverCall
}

// Decorate returns a handler that calls d around h.
func Decorate(h vault.Handler, d vault.Decorator) vault.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn vault.Handler
	dc vault.Decorator
}

var _ vault.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Deliver(ctx vault.Context, db vault.KVStore, tx *vault.Tx) (*vault.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}

// PanicDecorator panics when called.
type PanicDecorator struct {
	Msg string
}

var _ vault.Decorator = PanicDecorator{}

func (p PanicDecorator) Deliver(vault.Context, vault.KVStore, *vault.Tx, vault.Handler) (*vault.DeliverResult, error) {
	panic(p.Msg)
}
