package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"charterdesk/pkg/validation"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string        `yaml:"addr" validate:"required"`
	Environment    string        `yaml:"environment" validate:"oneof=local dev staging production"`
	AppName        string        `yaml:"app_name" validate:"notblank"`
	LogLevel       string        `yaml:"log_level" validate:"oneof=debug info warn error"`
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"gt=0"`
	TrustedProxies []string      `yaml:"trusted_proxies"`
	Tracing        bool          `yaml:"tracing"`

	Upstream  Upstream  `yaml:"upstream"`
	Auth      Auth      `yaml:"auth"`
	RateLimit RateLimit `yaml:"rate_limit"`
	Routes    []Route   `yaml:"routes" validate:"dive"`
}

// Upstream points at the three backend services the BFF aggregates.
type Upstream struct {
	BasicURL    string        `yaml:"basic_url" validate:"required,http_url"`
	VesselURL   string        `yaml:"vessel_url" validate:"required,http_url"`
	EmployeeURL string        `yaml:"employee_url" validate:"required,http_url"`
	Timeout     time.Duration `yaml:"timeout" validate:"gt=0"`
	// SuccessCode is the envelope `code` that marks a successful backend response.
	SuccessCode      int64 `yaml:"success_code"`
	BreakerFailures  int   `yaml:"breaker_failures" validate:"min=1"`
	BreakerSuccesses int   `yaml:"breaker_successes" validate:"min=1"`
}

type Auth struct {
	CookieName string `yaml:"cookie_name" validate:"notblank"`
	// SigningKey enables HMAC verification of access tokens when set.
	SigningKey   string `yaml:"signing_key"`
	Required     bool   `yaml:"required"`
	SecureCookie bool   `yaml:"secure_cookie"`
}

type RateLimit struct {
	RPS   float64 `yaml:"rps" validate:"min=0"`
	Burst int     `yaml:"burst" validate:"min=1"`
}

// Route is navigation metadata for a client page.
type Route struct {
	Name  string `yaml:"name" validate:"notblank"`
	Title string `yaml:"title"`
	Root  bool   `yaml:"root"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Server {
	return Server{
		Addr:           ":8080",
		Environment:    "local",
		AppName:        "船舶租赁审批",
		LogLevel:       "info",
		RequestTimeout: 30 * time.Second,
		Upstream: Upstream{
			BasicURL:         "http://localhost:9001",
			VesselURL:        "http://localhost:9002",
			EmployeeURL:      "http://localhost:9003",
			Timeout:          10 * time.Second,
			SuccessCode:      200,
			BreakerFailures:  5,
			BreakerSuccesses: 3,
		},
		Auth: Auth{
			CookieName: "charterdesk_token",
		},
		RateLimit: RateLimit{RPS: 20, Burst: 40},
		Routes: []Route{
			{Name: "Home", Title: "首页", Root: true},
			{Name: "Profile", Title: "我的", Root: true},
			{Name: "ContractDetail", Title: "合同审批"},
			{Name: "PaymentDetail", Title: "付款审批"},
			{Name: "VerificationDetail", Title: "核销审批"},
		},
	}
}

// Load layers configuration: defaults, then the YAML file at path (if any), then
// environment variables. A .env file in the working directory is loaded first when present.
func Load(path string) (Server, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Server{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path == "" {
		path = os.Getenv("CHARTERDESK_CONFIG")
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Server{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Server{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Server{}, err
	}
	if err := validation.Validate(cfg); err != nil {
		return Server{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Server) error {
	setString(&cfg.Addr, "CHARTERDESK_ADDR")
	setString(&cfg.Environment, "CHARTERDESK_ENV")
	setString(&cfg.AppName, "CHARTERDESK_APP_NAME")
	setString(&cfg.LogLevel, "CHARTERDESK_LOG_LEVEL")
	setString(&cfg.Upstream.BasicURL, "API_BASIC_URL")
	setString(&cfg.Upstream.VesselURL, "API_VESSEL_URL")
	setString(&cfg.Upstream.EmployeeURL, "API_EMPLOYEE_URL")
	setString(&cfg.Auth.CookieName, "CHARTERDESK_TOKEN_COOKIE")
	setString(&cfg.Auth.SigningKey, "JWT_SIGNING_KEY")

	if v := os.Getenv("CHARTERDESK_TRUSTED_PROXIES"); v != "" {
		cfg.TrustedProxies = strings.Split(v, ",")
	}

	for _, d := range []struct {
		key string
		dst *time.Duration
	}{
		{"CHARTERDESK_REQUEST_TIMEOUT", &cfg.RequestTimeout},
		{"API_TIMEOUT", &cfg.Upstream.Timeout},
	} {
		if v := os.Getenv(d.key); v != "" {
			parsed, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("%s: %w", d.key, err)
			}
			*d.dst = parsed
		}
	}

	for _, b := range []struct {
		key string
		dst *bool
	}{
		{"CHARTERDESK_TRACING", &cfg.Tracing},
		{"CHARTERDESK_TOKEN_REQUIRED", &cfg.Auth.Required},
		{"CHARTERDESK_SECURE_COOKIE", &cfg.Auth.SecureCookie},
	} {
		if v := os.Getenv(b.key); v != "" {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", b.key, err)
			}
			*b.dst = parsed
		}
	}

	if v := os.Getenv("API_SUCCESS_CODE"); v != "" {
		code, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("API_SUCCESS_CODE: %w", err)
		}
		cfg.Upstream.SuccessCode = code
	}
	if v := os.Getenv("CHARTERDESK_RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("CHARTERDESK_RATE_LIMIT_RPS: %w", err)
		}
		cfg.RateLimit.RPS = rps
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
