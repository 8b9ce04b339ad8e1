package fixture

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	generated *prometheus.CounterVec
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	generated := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fixture",
			Name:      "generated_total",
			Help:      "Cumulative number of generated fixture values per function",
		},
		[]string{"function"},
	)
	if registerer != nil {
		if err := registerer.Register(generated); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
					generated = existing
				}
			}
		}
	}
	return &metrics{generated: generated}
}

func (m *metrics) incGenerated(function string) {
	m.generated.WithLabelValues(function).Inc()
}
