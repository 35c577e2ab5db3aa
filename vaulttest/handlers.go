package vaulttest

import "github.com/iov-one/vault"

// Handler is a mock implementation of the vault.Handler interface. It
// returns the configured result and counts its calls.
type Handler struct {
	deliverCall   int
	DeliverResult vault.DeliverResult
	DeliverErr    error
	// Write if set is stored before returning.
	Write *Model
}

// Model is a key value pair.
type Model struct {
	Key, Value []byte
}

var _ vault.Handler = (*Handler)(nil)

func (h *Handler) Deliver(ctx vault.Context, db vault.KVStore, tx *vault.Tx) (*vault.DeliverResult, error) {
	h.deliverCall++
	if h.Write != nil {
		if err := db.Set(h.Write.Key, h.Write.Value); err != nil {
			return nil, err
		}
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CallCount() int {
	return h.deliverCall
}
