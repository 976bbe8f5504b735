package vpic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"autoinsight/internal/domain"
)

const outcomeOK = "OK"

type clientMetrics struct {
	decodes  *prometheus.CounterVec
	duration prometheus.Histogram
}

// newClientMetrics registers the collectors with registerer; a nil
// registerer leaves them unregistered.
func newClientMetrics(registerer prometheus.Registerer) clientMetrics {
	factory := promauto.With(registerer)

	return clientMetrics{
		decodes: factory.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: "autoinsight",
			Subsystem: "vpic",
			Name:      "decodes_total",
			Help:      "VIN decode calls to vPIC by outcome code.",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{ //nolint:exhaustruct
			Namespace: "autoinsight",
			Subsystem: "vpic",
			Name:      "decode_duration_seconds",
			Help:      "Duration of VIN decode calls to vPIC, parsing included.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m clientMetrics) observe(err error, elapsed time.Duration) {
	outcome := outcomeOK

	if err != nil {
		code, ok := domain.GetCode(err)
		if !ok {
			code = "UNCLASSIFIED"
		}

		outcome = code.String()
	}

	m.decodes.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}
