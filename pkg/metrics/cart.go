package metrics

import "github.com/prometheus/client_golang/prometheus"

// CartMetrics counts cart operations and store evictions.
type CartMetrics struct {
	operations *prometheus.CounterVec
	evictions  prometheus.Counter
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cart",
		Name:      "operations_total",
		Help:      "Cart operations by name and outcome.",
	}, []string{"operation", "outcome"})
	evictions := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cart",
		Name:      "evictions_total",
		Help:      "Carts evicted after their absolute or sliding expiry elapsed.",
	})
	reg.MustRegister(operations, evictions)
	return &CartMetrics{operations: operations, evictions: evictions}
}

// Observe records one cart operation. outcome is typically "success", "rejected" or "error".
func (c *CartMetrics) Observe(operation, outcome string) {
	if c == nil || c.operations == nil {
		return
	}
	c.operations.WithLabelValues(normalizeLabel(operation), normalizeLabel(outcome)).Inc()
}

// AddEvictions records carts removed by expiry.
func (c *CartMetrics) AddEvictions(n int) {
	if c == nil || c.evictions == nil || n <= 0 {
		return
	}
	c.evictions.Add(float64(n))
}
