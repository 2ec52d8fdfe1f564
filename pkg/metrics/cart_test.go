package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartMetricsCountsOperationsAndEvictions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCartMetrics(reg)
	m.Observe("add", "success")
	m.Observe("add", "success")
	m.Observe("add", "rejected")
	m.AddEvictions(4)
	m.AddEvictions(0)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	ops := findMetricFamily(mfs, "booklib_cart_operations_total")
	require.NotNil(t, ops)
	var success, rejected float64
	for _, metric := range ops.GetMetric() {
		switch {
		case matchesLabel(metric.GetLabel(), "outcome", "success"):
			success = metric.GetCounter().GetValue()
		case matchesLabel(metric.GetLabel(), "outcome", "rejected"):
			rejected = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2.0, success)
	assert.Equal(t, 1.0, rejected)

	evictions := findMetricFamily(mfs, "booklib_cart_evictions_total")
	require.NotNil(t, evictions)
	assert.Equal(t, 4.0, evictions.GetMetric()[0].GetCounter().GetValue())
}

func TestHTTPMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	m.Observe("/api/v1/books", "GET", 200, 20*time.Millisecond)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	sum, err := fetchHistogramSum(mfs, "booklib_http_request_duration_seconds", "route", "/api/v1/books")
	require.NoError(t, err)
	assert.Greater(t, sum, 0.0)
}
