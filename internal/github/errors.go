package github

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind discriminates the flat error taxonomy. Every failure surfaced
// by this package is exactly one Kind.
type Kind int

const (
	// KindConfig indicates invalid input or engine misconfiguration.
	KindConfig Kind = iota

	// KindAuth indicates missing or insufficient credentials.
	KindAuth

	// KindNotFound indicates the requested resource does not exist
	// or is not visible to the principal.
	KindNotFound

	// KindRateLimit indicates the API quota is exhausted.
	KindRateLimit

	// KindAPI indicates any other API failure.
	KindAPI
)

// String returns the kind's name for logs and error text.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not found"
	case KindRateLimit:
		return "rate limit"
	default:
		return "api"
	}
}

// Error is the single typed error surfaced by this package. It is a
// tagged variant, not a hierarchy: Kind selects the variant, Status
// and ResetAt carry the variant payloads that apply.
type Error struct {
	// Kind selects the taxonomy variant.
	Kind Kind

	// Status is the HTTP status code, 0 when none could be extracted.
	Status int

	// ResetAt is the quota reset time. Only set for KindRateLimit,
	// and only when a reset header was present.
	ResetAt time.Time

	// Message is a human-readable description.
	Message string

	// Cause is the underlying failure, if any.
	Cause error

	// Context carries free-form diagnostics (operation, repository).
	Context map[string]string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("github: ")
	b.WriteString(e.Kind.String())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Kind == KindRateLimit && !e.ResetAt.IsZero() {
		fmt.Fprintf(&b, ", resets at %s", e.ResetAt.Format(time.RFC3339))
	}
	if op, ok := e.Context["operation"]; ok {
		fmt.Fprintf(&b, " [%s]", op)
	}
	return b.String()
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// withContext attaches key/value diagnostics, allocating lazily.
// Pairs with a missing value are ignored.
func (e *Error) withContext(kv ...string) *Error {
	for i := 0; i+1 < len(kv); i += 2 {
		if e.Context == nil {
			e.Context = make(map[string]string, len(kv)/2)
		}
		e.Context[kv[i]] = kv[i+1]
	}
	return e
}

// newConfigError reports invalid input to an engine operation.
func newConfigError(format string, args ...any) *Error {
	return &Error{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts the typed error from err, if present.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// IsConfig reports whether err is a KindConfig failure.
func IsConfig(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindConfig
}

// IsAuth reports whether err is a KindAuth failure.
func IsAuth(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindAuth
}

// IsNotFound reports whether err is a KindNotFound failure.
func IsNotFound(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindNotFound
}

// IsRateLimited reports whether err is a KindRateLimit failure.
func IsRateLimited(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindRateLimit
}

// IsAPI reports whether err is a KindAPI failure.
func IsAPI(err error) bool {
	e, ok := AsError(err)
	return ok && e.Kind == KindAPI
}
