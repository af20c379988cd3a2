package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barber_chain",
			Name:      "appointment_transitions_total",
			Help:      "Appointment status transitions by from/to pair.",
		},
		[]string{"from", "to"},
	)

	fraudFlags = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barber_chain",
			Name:      "fraud_flags_total",
			Help:      "Vouchers flagged as fraudulent.",
		},
	)

	blacklists = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barber_chain",
			Name:      "client_blacklists_total",
			Help:      "Clients blacklisted by the fraud ledger.",
		},
	)
)

// Register registra as métricas. Seguro chamar mais de uma vez.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(transitions, fraudFlags, blacklists)
	})
}

func IncTransition(from, to string) {
	transitions.WithLabelValues(from, to).Inc()
}

func IncFraudFlag() {
	fraudFlags.Inc()
}

func IncBlacklist() {
	blacklists.Inc()
}
