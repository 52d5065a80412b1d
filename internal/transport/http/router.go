package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"charterdesk/pkg/platform/middleware/auth"
	"charterdesk/pkg/platform/middleware/device"
	"charterdesk/pkg/platform/middleware/metadata"
	"charterdesk/pkg/platform/middleware/ratelimit"
	"charterdesk/pkg/platform/middleware/request"
)

// APIPrefix is where the module routes are mounted.
const APIPrefix = "/api/v1"

// Registrar is implemented by every module handler.
type Registrar interface {
	Register(r chi.Router)
}

// Deps is what the router needs from the composition root.
type Deps struct {
	Logger         *slog.Logger
	RequestTimeout time.Duration
	Metrics        *request.Metrics
	Metadata       *metadata.Middleware
	Limiter        *ratelimit.Limiter
	Auth           auth.Config
	// Probes serve /health and friends outside the API prefix.
	Probes         Registrar
	MetricsHandler http.Handler
	Modules        []Registrar
}

// NewRouter wires all public endpoints with middleware. Probes and /metrics skip
// the token, rate limit and timeout layers.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(d.Logger))
	r.Use(request.RequestID)
	r.Use(d.Metadata.Handler)
	r.Use(device.Device)
	r.Use(request.Logger(d.Logger))
	r.Use(request.LatencyMiddleware(d.Metrics))

	if d.Probes != nil {
		d.Probes.Register(r)
	}
	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHandler)
	}

	r.Route(APIPrefix, func(api chi.Router) {
		api.Use(request.Timeout(d.RequestTimeout))
		api.Use(auth.Token(d.Auth, d.Logger))
		api.Use(d.Limiter.Handler)
		for _, m := range d.Modules {
			m.Register(api)
		}
	})

	return r
}
