// Package metrics exposes Prometheus collectors for the sync pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SyncsTotal          *prometheus.CounterVec
	TransactionsSaved   prometheus.Counter
	TransactionsSkipped prometheus.Counter
	SyncDuration        *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SyncsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "banksync_syncs_total",
			Help: "Sync attempts by provider and outcome.",
		}, []string{"provider", "status"}),

		TransactionsSaved: factory.NewCounter(prometheus.CounterOpts{
			Name: "banksync_transactions_saved_total",
			Help: "Transactions inserted by the reconciler.",
		}),

		TransactionsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "banksync_transactions_skipped_total",
			Help: "Transactions skipped as duplicates.",
		}),

		SyncDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "banksync_sync_duration_seconds",
			Help:    "End-to-end duration of one connection sync.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"provider"}),
	}
}

// ObserveSync records one completed sync attempt.
func (m *Metrics) ObserveSync(provider, status string, saved, skipped int, elapsed time.Duration) {
	m.SyncsTotal.WithLabelValues(provider, status).Inc()
	m.TransactionsSaved.Add(float64(saved))
	m.TransactionsSkipped.Add(float64(skipped))
	m.SyncDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
}
