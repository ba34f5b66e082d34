package routes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// catalogOperations counts catalog mutations per entity, operation and
// outcome, exposed at /metrics.
var catalogOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "souq_catalog_operations_total",
		Help: "Total number of catalog operations",
	},
	[]string{"entity", "operation", "status"},
)

func countOp(entity, operation, status string) {
	catalogOperations.WithLabelValues(entity, operation, status).Inc()
}
