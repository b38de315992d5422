package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

const (
	cbridgePrefix = "cbridge"
	mappings      = "mappings"
	direction     = "direction"
	blocking      = "blocking"
)

var (
	registeredMappings = newRegisteredMappingsGauge()
	rejectedMappings   = newRejectedMappingsCounter()
)

//ReportMappings sets the number of mappings currently registered for a direction and blocking flag
func ReportMappings(dir string, isBlocking bool, count int) {
	registeredMappings.WithLabelValues(dir, strconv.FormatBool(isBlocking)).Set(float64(count))
}

//ReportRejectedMappings counts mapping sets that failed validation
func ReportRejectedMappings() {
	rejectedMappings.Inc()
}

//GetMappingsValue gets the number of registered mappings for a direction and blocking flag
func GetMappingsValue(dir string, isBlocking bool) (float64, error) {
	m := &io_prometheus_client.Metric{}
	err := registeredMappings.WithLabelValues(dir, strconv.FormatBool(isBlocking)).Write(m)
	if err != nil {
		return 0, err
	}
	return m.GetGauge().GetValue(), nil
}

//GetRejectedMappingsValue gets the value of the rejected mappings counter
func GetRejectedMappingsValue() (float64, error) {
	m := &io_prometheus_client.Metric{}
	err := rejectedMappings.Write(m)
	if err != nil {
		return 0, err
	}
	return m.GetCounter().GetValue(), nil
}

//ResetMappingMetrics resets the metrics intended to be used in tests only
func ResetMappingMetrics() {
	prometheus.Unregister(registeredMappings)
	registeredMappings = newRegisteredMappingsGauge()
	prometheus.Unregister(rejectedMappings)
	rejectedMappings = newRejectedMappingsCounter()
}

func newRegisteredMappingsGauge() *prometheus.GaugeVec {
	return promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: cbridgePrefix,
		Subsystem: mappings,
		Name:      "registered",
		Help:      "The number of registered mappings. The direction and blocking flag are labeled",
	}, []string{direction, blocking})
}

func newRejectedMappingsCounter() prometheus.Counter {
	return promauto.NewCounter(prometheus.CounterOpts{
		Namespace: cbridgePrefix,
		Subsystem: mappings,
		Name:      "rejected",
		Help:      "counting the mapping sets rejected by validation",
	})
}
