package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charterdesk/internal/platform/health"
	"charterdesk/pkg/platform/httputil"
	"charterdesk/pkg/platform/middleware/auth"
	"charterdesk/pkg/platform/middleware/metadata"
	"charterdesk/pkg/platform/middleware/ratelimit"
	"charterdesk/pkg/platform/middleware/request"
	"charterdesk/pkg/requestcontext"
)

type echoModule struct{}

func (echoModule) Register(r chi.Router) {
	r.Get("/echo", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"token":      requestcontext.Token(r.Context()),
			"request_id": requestcontext.RequestID(r.Context()),
		})
	})
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"id": chi.URLParam(r, "id")})
	})
}

func newTestRouter(t *testing.T, rps float64, required bool) (http.Handler, *prometheus.Registry) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()

	return NewRouter(Deps{
		Logger:         logger,
		RequestTimeout: time.Second,
		Metrics:        request.NewMetrics(reg),
		Metadata:       metadata.NewMiddleware(nil),
		Limiter:        ratelimit.New(rps, 1, logger),
		Auth:           auth.Config{CookieName: "charterdesk_token", Required: required},
		Probes:         health.New("test"),
		Modules:        []Registrar{echoModule{}},
	}), reg
}

func TestRouterMountsModulesUnderPrefix(t *testing.T) {
	router, _ := newTestRouter(t, 0, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/echo?token=%20abc%20", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"abc","request_id":"`+w.Header().Get("X-Request-ID")+`"}`, w.Body.String())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "abc", cookies[0].Value)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/echo", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProbesSkipTokenCheck(t *testing.T) {
	router, _ := newTestRouter(t, 0, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/echo", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitedPerClient(t *testing.T) {
	router, _ := newTestRouter(t, 0.001, false)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/echo", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/echo", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
}

func TestLatencyLabelledByRoutePattern(t *testing.T) {
	router, reg := newTestRouter(t, 0, false)

	for _, id := range []string{"1", "2", "3"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/items/"+id, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 1, testutil.CollectAndCount(reg, "charterdesk_endpoint_latency_seconds"))
}
