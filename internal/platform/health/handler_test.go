package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.Register(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestReadiness(t *testing.T) {
	t.Run("pending checks do not fail readiness", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("dictionary", func(context.Context) error { return ErrPending })
		h.RegisterCheck("upstream_basic", func(context.Context) error { return nil })

		rec := serve(h, "/health/ready")

		require.Equal(t, http.StatusOK, rec.Code)
		var body ReadinessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "pending", body.Checks["dictionary"])
		assert.Equal(t, "up", body.Checks["upstream_basic"])
	})

	t.Run("failing check returns 503", func(t *testing.T) {
		h := New("test")
		h.RegisterCheck("upstream_vessel", func(context.Context) error { return errors.New("circuit open") })

		rec := serve(h, "/health/ready")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var body ReadinessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "not_ready", body.Status)
		assert.Equal(t, "down: circuit open", body.Checks["upstream_vessel"])
	})
}

func TestLivenessAndStatus(t *testing.T) {
	h := New("staging")
	h.startTime = time.Date(2025, 9, 20, 14, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return h.startTime.Add(90 * time.Second) }

	assert.JSONEq(t, `{"status":"alive"}`, serve(h, "/health/live").Body.String())

	var status StatusResponse
	require.NoError(t, json.Unmarshal(serve(h, "/health").Body.Bytes(), &status))
	assert.Equal(t, "staging", status.Environment)
	assert.Equal(t, int64(90), status.UptimeSeconds)
	assert.Equal(t, "2025-09-20T14:01:30Z", status.Timestamp)
}
