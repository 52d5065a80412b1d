// Package tracer is a small tracing facade over OpenTelemetry used by the backend
// client and the dictionary cache. Tests use the no-op implementation.
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Span is an active span. End must be called exactly once.
type Span interface {
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a span key/value pair.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: int64(value)}
}

// Int64 creates a 64-bit integer attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration records the value in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// TokenFingerprint returns a short stable hash of an access token so traces can be
// correlated per caller without carrying the credential.
func TokenFingerprint(token string) string {
	if token == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

const (
	SpanUpstreamCall     = "upstream.call"
	SpanDictionaryLoad   = "dictionary.load"
	SpanDictionaryFetch  = "dictionary.fetch"
	SpanContractView     = "contract.view"
	SpanPaymentView      = "payment.view"
	SpanVerificationView = "verification.view"
)

const (
	AttrService      = "upstream.service"
	AttrPath         = "upstream.path"
	AttrStatusCode   = "http.status_code"
	AttrEnvelopeCode = "upstream.envelope_code"
	AttrSource       = "dictionary.source"
	AttrCacheHit     = "cache.hit"
	AttrShared       = "singleflight.shared"
	AttrToken        = "token.fingerprint"
	AttrContractType = "contract.type"
	AttrVerifyType   = "verification.type"
)
