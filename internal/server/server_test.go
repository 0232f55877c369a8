package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nthnyvllflrs/ascent-erp/internal/testutil"
	"github.com/nthnyvllflrs/ascent-erp/pkg/config"
	"github.com/nthnyvllflrs/ascent-erp/pkg/database"
	"github.com/nthnyvllflrs/ascent-erp/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(authEnabled bool) *config.Config {
	return &config.Config{
		JWT:        config.JWTConfig{SigningKey: "server-test-key"},
		Auth:       config.AuthConfig{Enabled: authEnabled},
		Pagination: config.PaginationConfig{PageSize: 15, MaxPageSize: 100},
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	db := testutil.NewDB(t)
	e := New(Deps{Config: testConfig(true), DB: db})

	rec := get(t, e, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"ascent-erp"}`, rec.Body.String())

	require.NoError(t, database.Close(db))
	rec = get(t, e, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := New(Deps{
		Config:   testConfig(true),
		DB:       testutil.NewDB(t),
		Metrics:  metrics.New("erp", reg),
		Gatherer: reg,
	})

	assert.Equal(t, http.StatusUnauthorized, get(t, e, "/api/hr/additions/index").Code)

	rec := get(t, e, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `erp_http_requests_total{method="GET",path="/api/hr/additions/index",status="401"} 1`)
	assert.Contains(t, rec.Body.String(), `erp_auth_errors_total{reason="missing_token"} 1`)
}

func TestAuthCanBeDisabled(t *testing.T) {
	e := New(Deps{Config: testConfig(false), DB: testutil.NewDB(t)})

	rec := get(t, e, "/api/hr/additions/index")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
