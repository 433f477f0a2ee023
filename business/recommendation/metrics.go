package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecoExploreModeTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reco_explore_mode_total",
			Help: "Recommendation requests answered in explore mode (no user signal).",
		},
	)

	RecoDegradedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reco_degraded_results_total",
			Help: "Recommendation requests degraded to an empty result after a scoring failure.",
		},
	)
)

func init() {
	prometheus.MustRegister(RecoExploreModeTotal, RecoDegradedTotal)
}
