package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"charterdesk/internal/backend"
	contracthandler "charterdesk/internal/contract/handler"
	contractservice "charterdesk/internal/contract/service"
	"charterdesk/internal/dictionary"
	dictionaryhandler "charterdesk/internal/dictionary/handler"
	"charterdesk/internal/navigation"
	paymenthandler "charterdesk/internal/payment/handler"
	paymentservice "charterdesk/internal/payment/service"
	"charterdesk/internal/platform/config"
	"charterdesk/internal/platform/health"
	"charterdesk/internal/platform/metrics"
	"charterdesk/internal/platform/tracer"
	httptransport "charterdesk/internal/transport/http"
	"charterdesk/pkg/platform/middleware/auth"
	"charterdesk/pkg/platform/middleware/metadata"
	"charterdesk/pkg/platform/middleware/ratelimit"
	"charterdesk/pkg/platform/middleware/request"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

func serveCmd() *cobra.Command {
	var warm bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, warm)
		},
	}
	cmd.Flags().BoolVar(&warm, "warm", false, "load the dictionaries before accepting traffic")
	return cmd
}

func serve(ctx context.Context, warm bool) error {
	log.Info("initializing charterdesk",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"version", health.Version,
	)

	reg := metrics.NewRegistry()
	t := newTracer(cfg)

	client := newBackend(cfg, reg, t)
	cache := dictionary.NewCache(client,
		dictionary.WithTracer(t),
		dictionary.WithMetrics(dictionary.NewMetrics(reg)),
		dictionary.WithLogger(log),
	)
	if warm {
		if _, err := cache.Ensure(ctx); err != nil {
			// the first request retries the load
			log.Warn("dictionary warm-up failed", "error", err)
		}
	}

	contracts := contractservice.New(cache, client,
		contractservice.WithTracer(t),
		contractservice.WithLogger(log),
	)
	payments := paymentservice.New(cache, client,
		paymentservice.WithTracer(t),
		paymentservice.WithLogger(log),
	)

	probes := health.New(cfg.Environment)
	probes.RegisterCheck("dictionaries", func(context.Context) error {
		if !cache.Loaded() {
			return health.ErrPending
		}
		return nil
	})
	probes.RegisterCheck("backend", client.Ready)

	proxies, err := metadata.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}

	limiter := ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
	go limiter.Run(ctx, sweepInterval)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		RequestTimeout: cfg.RequestTimeout,
		Metrics:        request.NewMetrics(reg),
		Metadata:       metadata.NewMiddleware(proxies),
		Limiter:        limiter,
		Auth:           authConfig(cfg.Auth),
		Probes:         probes,
		MetricsHandler: metrics.Handler(reg),
		Modules: []httptransport.Registrar{
			contracthandler.New(contracts, log),
			paymenthandler.New(payments, log),
			dictionaryhandler.New(cache, client, log),
			navigation.NewHandler(navigation.NewCatalog(cfg.AppName, cfg.Routes), log),
		},
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func newTracer(cfg config.Server) tracer.Tracer {
	if cfg.Tracing {
		return tracer.NewOTel()
	}
	return tracer.NewNoop()
}

func newBackend(cfg config.Server, reg prometheus.Registerer, t tracer.Tracer) *backend.Client {
	return backend.New(backend.Config{
		BasicURL:         cfg.Upstream.BasicURL,
		VesselURL:        cfg.Upstream.VesselURL,
		EmployeeURL:      cfg.Upstream.EmployeeURL,
		Timeout:          cfg.Upstream.Timeout,
		SuccessCode:      cfg.Upstream.SuccessCode,
		BreakerFailures:  cfg.Upstream.BreakerFailures,
		BreakerSuccesses: cfg.Upstream.BreakerSuccesses,
	},
		backend.WithTracer(t),
		backend.WithMetrics(backend.NewMetrics(reg)),
		backend.WithLogger(log),
	)
}

func authConfig(a config.Auth) auth.Config {
	return auth.Config{
		CookieName: a.CookieName,
		Secure:     a.SecureCookie,
		Required:   a.Required,
		Parser:     auth.JWTParser{SigningKey: []byte(a.SigningKey)},
	}
}
