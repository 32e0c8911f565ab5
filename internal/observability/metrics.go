package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "extracurricular",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful activity signups.",
	})

	unregisterCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "extracurricular",
		Subsystem: "roster",
		Name:      "unregisters_total",
		Help:      "Number of successful activity unregisters.",
	})

	rejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular",
		Subsystem: "roster",
		Name:      "rejected_requests_total",
		Help:      "Number of rejected roster mutations, labeled by rejection reason.",
	}, []string{"reason"})

	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "extracurricular",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current participant count per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectedCounter, rosterSizeGauge)
}

// RecordSignup counts a successful signup and updates the roster gauge.
func RecordSignup(activity string, rosterSize int) {
	signupCounter.Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordUnregister counts a successful unregister and updates the roster gauge.
func RecordUnregister(activity string, rosterSize int) {
	unregisterCounter.Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordRejection counts a rejected mutation.
func RecordRejection(reason string) {
	rejectedCounter.WithLabelValues(reason).Inc()
}
