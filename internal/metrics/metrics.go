package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "orderflow"

type Metrics struct {
	Settlements        *prometheus.CounterVec
	DeadLetters        *prometheus.CounterVec
	OutboxPublished    prometheus.Counter
	SettlementRejected prometheus.Counter
}

// New builds the collectors and registers them on reg. Passing a fresh
// prometheus.NewRegistry() keeps tests isolated from the default registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Settlements that reached a terminal payment status.",
		}, []string{"status"}),
		DeadLetters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dead_letters_total",
			Help:      "Order events moved to the dead-letter topic, by source topic.",
		}, []string{"topic"}),
		OutboxPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_published_total",
			Help:      "Outbox rows published and marked sent.",
		}),
		SettlementRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_rejected_total",
			Help:      "Settlement submissions rejected because the queue was full.",
		}),
	}

	reg.MustRegister(m.Settlements, m.DeadLetters, m.OutboxPublished, m.SettlementRejected)

	return m
}

// NewNop returns collectors that are not registered anywhere.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
