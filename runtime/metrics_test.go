package runtime

import (
	"context"
	"testing"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/iov-one/vault/store"
	"github.com/iov-one/vault/vaulttest"
	"github.com/iov-one/vault/vaulttest/assert"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	m, err := NewMetrics(prometheus.NewRegistry())
	assert.Nil(t, err)

	router := NewRouter()
	router.Register("mover", moverID, vault.ProgramFunc(mover))
	db := store.MemStore()
	rt := New(db, router, WithMetrics(m))

	a := vaulttest.SequenceKey(1).Pubkey()
	b := vaulttest.SequenceKey(2).Pubkey()
	fund(t, db, a, 10, moverID)

	_, err = rt.ProcessTx(context.Background(), vault.NewTx(1, moveIx(a, b, 5), moveIx(a, b, 5)))
	assert.Nil(t, err)
	_, err = rt.ProcessTx(context.Background(), vault.NewTx(2, moveIx(a, b, 5)))
	assert.IsErr(t, errors.ErrInsufficientFunds, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.transactions.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transactions.WithLabelValues(resultLabel(errors.ErrInsufficientFunds))))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.instructions.WithLabelValues("mover", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.instructions.WithLabelValues("mover", "12")))
}

func TestMetricsRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	assert.Nil(t, err)
	_, err = NewMetrics(reg)
	assert.IsErr(t, errors.ErrHuman, err)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.observeInstruction("mover", nil)
	h := vaulttest.Decorate(&vaulttest.Handler{}, m)
	_, err := h.Deliver(context.Background(), nil, vault.NewTx(1))
	assert.Nil(t, err)
}
