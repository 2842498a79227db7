package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopsync_store_operations_total",
			Help: "Total number of store operations by store, operation, and outcome",
		},
		[]string{"store", "op", "outcome"},
	)

	storeLines = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shopsync_store_lines",
			Help: "Current number of line items held by each store",
		},
		[]string{"store"},
	)
)

func observeOp(store, op string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	storeOps.WithLabelValues(store, op, outcome).Inc()
}
