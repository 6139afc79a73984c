package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the service.
type Metrics struct {
	PredictionsComputed prometheus.Counter
	PredictionsFailed   prometheus.Counter
	PredictionLatency   prometheus.Histogram
	WeatherFallbacks    prometheus.Counter
	RouteSearches       prometheus.Counter
	DisruptionsHandled  prometheus.Counter
	NotificationsSent   prometheus.Counter
	ErrorsCount         *prometheus.CounterVec
}

// NewMetrics registers and returns the service metrics under the given namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		PredictionsComputed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_computed_total",
			Help:      "The total number of price predictions computed",
		}),
		PredictionsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_failed_total",
			Help:      "The total number of price predictions that failed",
		}),
		PredictionLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prediction_duration_seconds",
			Help:      "Time taken to produce a price prediction",
			Buckets:   prometheus.DefBuckets,
		}),
		WeatherFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_fallbacks_total",
			Help:      "The total number of weather lookups that fell back to MEDIUM delay risk",
		}),
		RouteSearches: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_searches_total",
			Help:      "The total number of shortest-route searches served",
		}),
		DisruptionsHandled: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "disruptions_handled_total",
			Help:      "The total number of flight disruption events processed",
		}),
		NotificationsSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "The total number of disruption notifications written",
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors by operation",
		}, []string{"operation"}),
	}
}
