// Package metrics counts store mutations, authentication attempts and QR
// lookups. There is no scrape endpoint; counters are written to a
// node-exporter textfile when the process exits.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Registry *prometheus.Registry

	StoreMutations *prometheus.CounterVec
	AuthAttempts   *prometheus.CounterVec
	QRLookups      *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		StoreMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gardentrack_store_mutations_total",
				Help: "Total number of store mutations by entity and operation",
			},
			[]string{"entity", "op"},
		),
		AuthAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gardentrack_auth_attempts_total",
				Help: "Total number of login and registration attempts by outcome",
			},
			[]string{"op", "result"}, // result is "success" or "failure"
		),
		QRLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gardentrack_qr_lookups_total",
				Help: "Total number of QR lookups by source and outcome",
			},
			[]string{"source", "result"}, // source is "manual" or "camera"
		),
	}
	m.Registry.MustRegister(m.StoreMutations, m.AuthAttempts, m.QRLookups)
	return m
}

// Mutation implements store.Observer.
func (m *Metrics) Mutation(entity, op string) {
	m.StoreMutations.WithLabelValues(entity, op).Inc()
}

func (m *Metrics) AuthAttempt(op string, ok bool) {
	m.AuthAttempts.WithLabelValues(op, outcome(ok)).Inc()
}

func (m *Metrics) QRLookup(source string, found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	m.QRLookups.WithLabelValues(source, result).Inc()
}

// WriteTextfile writes every registered metric to path in the text exposition
// format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
