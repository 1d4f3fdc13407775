package api

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homenet",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)
)

// registerDeviceGauge exposes the current registry size. Registration happens
// once per process; re-registering (as router-per-test setups do) is ignored.
func registerDeviceGauge(count func() int) {
	g := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "homenet",
			Name:      "devices",
			Help:      "Devices currently in the registry.",
		},
		func() float64 { return float64(count()) },
	)
	if err := prometheus.Register(g); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(err)
		}
	}
}
