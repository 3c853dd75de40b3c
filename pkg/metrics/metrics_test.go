package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.ObserveDBQuery("query", time.Millisecond, nil)
		m.SetDBConnections(1, 1, 0)
		m.IncQuoteCalculated("cheap")
		m.IncOccupancyCheck(true)
		m.IncOccupancyConflict()
		m.ObserveSuggestions(3)
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("test-service", prometheus.NewRegistry())

	m.IncQuoteCalculated("cheap")
	m.IncQuoteCalculated("cheap")
	m.IncQuoteCalculated("")
	m.IncOccupancyConflict()
	m.IncOccupancyCheck(false)
	m.ObserveHTTPRequest("POST", "/api/v1/events/{eventId}/quotes", 201, 10*time.Millisecond)
	m.ObserveDBQuery("exec", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.quotesCalculated.WithLabelValues("cheap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotesCalculated.WithLabelValues("unknown")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.occupancyConflicts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.occupancyChecks.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/events/{eventId}/quotes", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueryErrors.WithLabelValues("exec")))
}

func TestMetrics_DBConnections(t *testing.T) {
	m := NewWithRegisterer("test-service", prometheus.NewRegistry())

	m.SetDBConnections(10, 3, 7)

	assert.Equal(t, 10.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("open")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("in_use")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.dbConnections.WithLabelValues("idle")))
}
