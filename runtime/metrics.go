package runtime

import (
	"strconv"
	"time"

	"github.com/iov-one/vault"
	"github.com/iov-one/vault/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts processed transactions and instructions. A nil *Metrics
// records nothing.
type Metrics struct {
	transactions *prometheus.CounterVec
	instructions *prometheus.CounterVec
	duration     prometheus.Histogram
}

var _ vault.Decorator = (*Metrics)(nil)

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vault",
			Name:      "transactions_total",
			Help:      "Processed transactions by result code.",
		}, []string{"result"}),
		instructions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vault",
			Name:      "instructions_total",
			Help:      "Program invocations, including cross-program calls, by program and result code.",
		}, []string{"program", "result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vault",
			Name:      "transaction_duration_seconds",
			Help:      "Time spent processing a transaction.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	for _, c := range []prometheus.Collector{m.transactions, m.instructions, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrapf(errors.ErrHuman, "register metrics: %s", err)
		}
	}
	return m, nil
}

// Deliver measures the transaction processed by next.
func (m *Metrics) Deliver(ctx vault.Context, store vault.KVStore, tx *vault.Tx, next vault.Handler) (*vault.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	if m != nil {
		m.duration.Observe(time.Since(start).Seconds())
		m.transactions.WithLabelValues(resultLabel(err)).Inc()
	}
	return res, err
}

func (m *Metrics) observeInstruction(program string, err error) {
	if m == nil {
		return
	}
	m.instructions.WithLabelValues(program, resultLabel(err)).Inc()
}

// resultLabel returns "ok" or the numeric error code.
func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return strconv.FormatUint(uint64(errors.Code(err)), 10)
}
