//go:build unit

package metrics_test

import (
	"strings"
	"testing"

	"salon-booking/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	m.ObserveCodeRequest("PHONE", "issued")
	m.ObserveCodeRequest("PHONE", "issued")
	m.ObserveCodeRequest("EMAIL", "cooldown")
	m.ObserveVerification("verified")
	m.ObserveBooking("create", "slot_taken")

	expected := `
# HELP salon_auth_code_requests_total OTP code requests by channel and outcome
# TYPE salon_auth_code_requests_total counter
salon_auth_code_requests_total{channel="EMAIL",outcome="cooldown"} 1
salon_auth_code_requests_total{channel="PHONE",outcome="issued"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "salon_auth_code_requests_total"))

	count, err := testutil.GatherAndCount(reg, "salon_auth_verifications_total", "salon_booking_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetricsHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	m.ObserveHTTP("POST", "/api/appointments", "201", 0.05)
	m.ObserveHTTP("POST", "/api/appointments", "409", 0.01)

	count, err := testutil.GatherAndCount(reg, "salon_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(reg, "salon_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveCodeRequest("PHONE", "issued")
		m.ObserveVerification("verified")
		m.ObserveBooking("create", "ok")
		m.ObserveHTTP("GET", "/", "200", 0)
	})
}
