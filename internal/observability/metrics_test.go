package observability

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics("test")
	m.ObserveChainCall("goal", 5*time.Millisecond, nil)
	m.ObserveChainCall("goal", time.Millisecond, errors.New("boom"))
	m.ObserveRequest("/api/v1/campaigns", http.MethodGet, http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `test_chain_calls_total{method="goal",outcome="error"} 1`)
	assert.Contains(t, string(body), `test_http_requests_total{method="GET",route="/api/v1/campaigns",status="200"} 1`)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.ObserveChainCall("goal", time.Second, nil)
	m.ObserveRequest("/", http.MethodGet, http.StatusOK, time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
