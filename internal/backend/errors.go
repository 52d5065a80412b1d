package backend

import (
	"errors"
	"fmt"

	dErrors "charterdesk/pkg/domain-errors"
)

// Category is the normalized failure taxonomy for backend calls.
type Category string

const (
	CategoryTimeout      Category = "timeout"
	CategoryOutage       Category = "outage"
	CategoryRejected     Category = "rejected"
	CategoryBadData      Category = "bad_data"
	CategoryNotFound     Category = "not_found"
	CategoryUnauthorized Category = "unauthorized"
	CategoryRateLimited  Category = "rate_limited"
	CategoryInternal     Category = "internal"
)

// UpstreamError describes a failed backend call. Code and Message carry the
// envelope values when the backend answered with a non-success code.
type UpstreamError struct {
	Category   Category
	Service    Service
	Path       string
	StatusCode int
	Code       int64
	Message    string
	Underlying error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s %s [%s]: %s", e.Service, e.Path, e.Category, e.Message)
	if e.Underlying != nil {
		msg += ": " + e.Underlying.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Underlying
}

// Transient reports whether the failure counts against the service breaker.
func (e *UpstreamError) Transient() bool {
	return e.Category == CategoryTimeout || e.Category == CategoryOutage
}

// CategoryOf extracts the category from an error chain.
func CategoryOf(err error) Category {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Category
	}
	return CategoryInternal
}

func domainCode(c Category) dErrors.Code {
	switch c {
	case CategoryTimeout:
		return dErrors.CodeTimeout
	case CategoryOutage:
		return dErrors.CodeUnavailable
	case CategoryNotFound:
		return dErrors.CodeNotFound
	case CategoryUnauthorized:
		return dErrors.CodeUnauthorized
	case CategoryRateLimited:
		return dErrors.CodeTooMany
	case CategoryRejected, CategoryBadData:
		return dErrors.CodeBadGateway
	default:
		return dErrors.CodeInternal
	}
}

// toDomain wraps the upstream error in a domain error so transport code can map
// it without knowing about backends. errors.As still reaches the UpstreamError.
func toDomain(ue *UpstreamError) error {
	msg := "backend request failed"
	switch ue.Category {
	case CategoryTimeout:
		msg = "backend request timed out"
	case CategoryOutage:
		msg = "backend service unavailable"
	case CategoryNotFound:
		msg = "record not found"
	case CategoryUnauthorized:
		msg = "backend rejected credentials"
	case CategoryRateLimited:
		msg = "backend rate limit exceeded"
	case CategoryRejected:
		if ue.Message != "" {
			msg = ue.Message
		}
	case CategoryBadData:
		msg = "backend returned malformed data"
	}
	return &dErrors.Error{Code: domainCode(ue.Category), Message: msg, Err: ue}
}
