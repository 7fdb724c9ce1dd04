package metrics

import (
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("shareit-server")

	m.ObserveHTTP(http.MethodGet, "/items/{itemId}", http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/items/{itemId}", http.StatusOK, 20*time.Millisecond)
	m.IncBookingTransition("APPROVED")
	m.ObserveQuery("SELECT", time.Millisecond, nil)
	m.ObserveQuery("UPDATE", time.Millisecond, errors.New("conn reset"))
	m.ObserveQuery("SELECT", time.Millisecond, sql.ErrNoRows)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/items/{itemId}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingTransitions.WithLabelValues("APPROVED")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.dbQueryDuration))
}

func TestMetrics_PoolStats(t *testing.T) {
	m := New("shareit-server")
	m.SetPoolStats(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3})

	assert.Equal(t, 5.0, testutil.ToFloat64(m.dbOpenConns))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbInUseConns))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbIdleConns))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("shareit-gateway")
	m.IncRateLimited("/bookings")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `shareit_rate_limited_requests_total{route="/bookings",service="shareit-gateway"} 1`)
}
