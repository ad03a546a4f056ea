// Package metrics регистрирует Prometheus-метрики шлюза: счётчик и
// гистограмму исходящих вызовов удалённых эндпоинтов. Метрики регистрируются
// в реестре по умолчанию через promauto и отдаются маршрутом /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// Исходы исходящего вызова для метки outcome.
const (
	OutcomeOK           = "ok"
	OutcomeAPIError     = "api_error"
	OutcomeNetworkError = "network_error"
)

var endpointCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "endpoint_calls_total",
		Help:      "Количество исходящих вызовов удалённых эндпоинтов по действию и исходу.",
	},
	[]string{"action", "outcome"},
)

var endpointCallDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "endpoint_call_duration_seconds",
		Help:      "Длительность исходящего вызова удалённого эндпоинта.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"action"},
)

// ObserveEndpointCall учитывает один завершившийся исходящий вызов.
func ObserveEndpointCall(action, outcome string, elapsed time.Duration) {
	endpointCallsTotal.WithLabelValues(action, outcome).Inc()
	endpointCallDuration.WithLabelValues(action).Observe(elapsed.Seconds())
}
