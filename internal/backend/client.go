// Package backend is the typed client for the basic-data, vessel and employee
// services. Every call is a POST returning the envelope {code, data, message}.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"charterdesk/internal/platform/tracer"
	"charterdesk/pkg/platform/circuit"
	"charterdesk/pkg/requestcontext"
)

// Service names a backend the client talks to.
type Service string

const (
	ServiceBasic    Service = "basic"
	ServiceVessel   Service = "vessel"
	ServiceEmployee Service = "employee"
)

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BasicURL    string
	VesselURL   string
	EmployeeURL string
	Timeout     time.Duration
	// SuccessCode is the envelope code of a successful response.
	SuccessCode      int64
	BreakerFailures  int
	BreakerSuccesses int
}

type Client struct {
	bases       map[Service]string
	http        HTTPDoer
	successCode int64
	breakers    map[Service]*circuit.Breaker
	tracer      tracer.Tracer
	metrics     *Metrics
	logger      *slog.Logger
	now         func() time.Time
}

type Option func(*Client)

func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		c.http = doer
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *Client) {
		c.tracer = t
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func New(cfg Config, opts ...Option) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	c := &Client{
		bases: map[Service]string{
			ServiceBasic:    strings.TrimRight(cfg.BasicURL, "/"),
			ServiceVessel:   strings.TrimRight(cfg.VesselURL, "/"),
			ServiceEmployee: strings.TrimRight(cfg.EmployeeURL, "/"),
		},
		successCode: cfg.SuccessCode,
		breakers:    make(map[Service]*circuit.Breaker, 3),
		tracer:      tracer.NewNoop(),
		logger:      slog.New(slog.DiscardHandler),
		now:         time.Now,
	}
	for svc := range c.bases {
		c.breakers[svc] = circuit.New(string(svc),
			circuit.WithFailureThreshold(cfg.BreakerFailures),
			circuit.WithSuccessThreshold(cfg.BreakerSuccesses),
		)
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: cfg.Timeout}
	}
	return c
}

// Ready fails while any backend breaker is open. It backs the readiness probe.
func (c *Client) Ready(_ context.Context) error {
	var open []string
	for _, svc := range []Service{ServiceBasic, ServiceVessel, ServiceEmployee} {
		if c.breakers[svc].State() == circuit.StateOpen {
			open = append(open, string(svc))
		}
	}
	if len(open) > 0 {
		return fmt.Errorf("circuit open for %s", strings.Join(open, ", "))
	}
	return nil
}

// emptyBody is sent by the endpoints that expect a JSON object even when there are
// no filters.
var emptyBody = struct{}{}

// call issues the POST and returns the envelope's data field.
func (c *Client) call(ctx context.Context, svc Service, path string, query url.Values, body any) (data gjson.Result, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanUpstreamCall,
		tracer.String(tracer.AttrService, string(svc)),
		tracer.String(tracer.AttrPath, path),
	)
	start := c.now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = string(CategoryOf(err))
		}
		c.metrics.observe(svc, outcome, c.now().Sub(start).Seconds())
		span.End(err)
	}()

	data, ue := c.do(ctx, svc, path, query, body, span)
	c.record(ctx, svc, ue)
	if ue != nil {
		c.logger.WarnContext(ctx, "backend call failed",
			"service", svc,
			"path", path,
			"category", ue.Category,
			"status", ue.StatusCode,
			"error", ue,
			"request_id", requestcontext.RequestID(ctx),
		)
		return gjson.Result{}, toDomain(ue)
	}
	return data, nil
}

func (c *Client) do(ctx context.Context, svc Service, path string, query url.Values, body any, span tracer.Span) (gjson.Result, *UpstreamError) {
	fail := func(cat Category, status int, msg string, err error) *UpstreamError {
		return &UpstreamError{Category: cat, Service: svc, Path: path, StatusCode: status, Message: msg, Underlying: err}
	}

	target := c.bases[svc] + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return gjson.Result{}, fail(CategoryInternal, 0, "failed to marshal request", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, reader)
	if err != nil {
		return gjson.Result{}, fail(CategoryInternal, 0, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := requestcontext.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		span.SetAttributes(tracer.String(tracer.AttrToken, tracer.TokenFingerprint(token)))
	}
	if id := requestcontext.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return gjson.Result{}, fail(CategoryTimeout, 0, "request timeout", err)
		}
		return gjson.Result{}, fail(CategoryOutage, 0, "failed to execute request", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(tracer.Int(tracer.AttrStatusCode, resp.StatusCode))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(ctx, err) {
			return gjson.Result{}, fail(CategoryTimeout, resp.StatusCode, "response read timeout", err)
		}
		return gjson.Result{}, fail(CategoryBadData, resp.StatusCode, "failed to read response", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return gjson.Result{}, fail(CategoryUnauthorized, resp.StatusCode, fmt.Sprintf("authentication failed: %d", resp.StatusCode), nil)
	case resp.StatusCode == http.StatusNotFound:
		return gjson.Result{}, fail(CategoryNotFound, resp.StatusCode, "endpoint not found", nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return gjson.Result{}, fail(CategoryRateLimited, resp.StatusCode, "rate limit exceeded", nil)
	case resp.StatusCode == http.StatusGatewayTimeout:
		return gjson.Result{}, fail(CategoryTimeout, resp.StatusCode, "gateway timeout", nil)
	case resp.StatusCode >= 500:
		return gjson.Result{}, fail(CategoryOutage, resp.StatusCode, fmt.Sprintf("service unavailable: %d", resp.StatusCode), nil)
	case resp.StatusCode >= 300:
		return gjson.Result{}, fail(CategoryRejected, resp.StatusCode, fmt.Sprintf("unexpected status: %d", resp.StatusCode), nil)
	}

	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fail(CategoryBadData, resp.StatusCode, "response is not valid JSON", nil)
	}
	env := gjson.GetManyBytes(raw, "code", "data", "message")
	code, data, message := env[0], env[1], env[2]
	if !code.Exists() {
		return gjson.Result{}, fail(CategoryBadData, resp.StatusCode, "response envelope has no code", nil)
	}
	span.SetAttributes(tracer.Int64(tracer.AttrEnvelopeCode, code.Int()))
	if code.Int() != c.successCode {
		ue := fail(CategoryRejected, resp.StatusCode, message.String(), nil)
		ue.Code = code.Int()
		return gjson.Result{}, ue
	}
	return data, nil
}

func (c *Client) record(ctx context.Context, svc Service, ue *UpstreamError) {
	b := c.breakers[svc]
	var t circuit.Transition
	if ue != nil && ue.Transient() {
		t = b.RecordFailure()
	} else {
		t = b.RecordSuccess()
	}
	switch t {
	case circuit.Opened:
		c.metrics.setBreaker(svc, true)
		c.logger.WarnContext(ctx, "backend circuit opened", "service", svc)
	case circuit.Closed:
		c.metrics.setBreaker(svc, false)
		c.logger.InfoContext(ctx, "backend circuit closed", "service", svc)
	}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// decodeList decodes a list payload. A missing or null data field is an empty list.
func decodeList[T any](data gjson.Result, svc Service, path string) ([]T, error) {
	if !data.Exists() || data.Type == gjson.Null {
		return []T{}, nil
	}
	if !data.IsArray() {
		return nil, toDomain(&UpstreamError{Category: CategoryBadData, Service: svc, Path: path, Message: "expected a list"})
	}
	out := make([]T, 0, len(data.Array()))
	if err := json.Unmarshal([]byte(data.Raw), &out); err != nil {
		return nil, toDomain(&UpstreamError{Category: CategoryBadData, Service: svc, Path: path, Message: "failed to decode list", Underlying: err})
	}
	return out, nil
}

// decodeOne decodes a single record. A missing or null data field means the record
// does not exist.
func decodeOne[T any](data gjson.Result, svc Service, path string) (*T, error) {
	if !data.Exists() || data.Type == gjson.Null {
		return nil, toDomain(&UpstreamError{Category: CategoryNotFound, Service: svc, Path: path, Message: "empty data"})
	}
	if !data.IsObject() {
		return nil, toDomain(&UpstreamError{Category: CategoryBadData, Service: svc, Path: path, Message: "expected an object"})
	}
	var out T
	if err := json.Unmarshal([]byte(data.Raw), &out); err != nil {
		return nil, toDomain(&UpstreamError{Category: CategoryBadData, Service: svc, Path: path, Message: "failed to decode record", Underlying: err})
	}
	return &out, nil
}

// rawData passes the payload through untouched; null becomes an empty JSON value of
// the expected kind.
func rawData(data gjson.Result, empty string) json.RawMessage {
	if !data.Exists() || data.Type == gjson.Null {
		return json.RawMessage(empty)
	}
	return json.RawMessage(data.Raw)
}

func list[T any](ctx context.Context, c *Client, svc Service, path string, query url.Values, body any) ([]T, error) {
	data, err := c.call(ctx, svc, path, query, body)
	if err != nil {
		return nil, err
	}
	return decodeList[T](data, svc, path)
}

func one[T any](ctx context.Context, c *Client, svc Service, path string, query url.Values) (*T, error) {
	data, err := c.call(ctx, svc, path, query, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](data, svc, path)
}
