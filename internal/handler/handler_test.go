package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nthnyvllflrs/ascent-erp/internal/server"
	"github.com/nthnyvllflrs/ascent-erp/internal/testutil"
	"github.com/nthnyvllflrs/ascent-erp/pkg/config"
	"github.com/nthnyvllflrs/ascent-erp/pkg/jwtutil"
	"github.com/nthnyvllflrs/ascent-erp/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const signingKey = "feature-test-key"

type app struct {
	e     *echo.Echo
	db    *gorm.DB
	token string
}

// newApp serves the full router over a fresh in-memory database
func newApp(t *testing.T) *app {
	t.Helper()

	cfg := &config.Config{
		JWT:        config.JWTConfig{SigningKey: signingKey},
		Auth:       config.AuthConfig{Enabled: true},
		Pagination: config.PaginationConfig{PageSize: 15, MaxPageSize: 100},
	}
	db := testutil.NewDB(t)
	reg := prometheus.NewRegistry()

	token, err := jwtutil.NewJWTUtil(signingKey).GenerateToken("hr@example.com", 1, time.Hour)
	require.NoError(t, err)

	return &app{
		e:     server.New(server.Deps{Config: cfg, DB: db, Metrics: metrics.New("test", reg), Gatherer: reg}),
		db:    db,
		token: token,
	}
}

// do sends body as JSON; a string body is sent verbatim
func (a *app) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+a.token)

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

type validationBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

type pageBody[T any] struct {
	Data        []T   `json:"data"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
	From        *int  `json:"from"`
	To          *int  `json:"to"`
}
