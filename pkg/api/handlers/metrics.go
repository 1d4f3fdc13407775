package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homenet",
			Name:      "discovery_scans_total",
			Help:      "Discovery runs by mode and outcome.",
		},
		[]string{"mode", "outcome"},
	)

	devicesMerged = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "homenet",
			Name:      "devices_merged_total",
			Help:      "Devices added to the registry via import.",
		},
	)

	assistantCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homenet",
			Name:      "assistant_calls_total",
			Help:      "Assistant invocations by operation.",
		},
		[]string{"operation"},
	)
)
