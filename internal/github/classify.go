package github

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
)

// extract pulls a best-effort (message, status, header) triple out of
// a raw failure. Status 0 means no HTTP status could be extracted.
func extract(err error) (string, int, http.Header) {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		status := 0
		var header http.Header
		if ghErr.Response != nil {
			status = ghErr.Response.StatusCode
			header = ghErr.Response.Header
		}
		return ghErr.Message, status, header
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		status := http.StatusForbidden
		var header http.Header
		if rateErr.Response != nil {
			status = rateErr.Response.StatusCode
			header = rateErr.Response.Header
		}
		return rateErr.Message, status, header
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		status := http.StatusTooManyRequests
		var header http.Header
		if abuseErr.Response != nil {
			status = abuseErr.Response.StatusCode
			header = abuseErr.Response.Header
		}
		return abuseErr.Message, status, header
	}

	return err.Error(), 0, nil
}

// resetFromHeader parses the quota reset instant from response
// headers. Zero time when neither reset nor retry-after is present.
func resetFromHeader(header http.Header) time.Time {
	if header == nil {
		return time.Time{}
	}
	if reset := header.Get(headerRateReset); reset != "" {
		if secs, err := strconv.ParseInt(reset, 10, 64); err == nil {
			return time.Unix(secs, 0)
		}
	}
	if retry := header.Get(headerRetryAfter); retry != "" {
		if secs, err := strconv.Atoi(retry); err == nil {
			return time.Now().Add(time.Duration(secs) * time.Second)
		}
	}
	return time.Time{}
}

// quotaExhausted reports whether headers show zero remaining quota
// alongside a reset instant.
func quotaExhausted(header http.Header) bool {
	if header == nil {
		return false
	}
	return header.Get(headerRateRemaining) == "0" && header.Get(headerRateReset) != ""
}

// mentionsScope reports whether an API message blames token scope or
// permissions, which distinguishes permission failures from plain
// credential failures on 403 responses.
func mentionsScope(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "scope") || strings.Contains(lower, "permission")
}

// Classify converts a raw failure into the package's typed Error.
// Already-typed errors pass through unchanged apart from gaining the
// supplied context, so classification is idempotent. The kv pairs are
// free-form diagnostics attached to the error's context map.
func Classify(err error, operation string, kv ...string) error {
	if err == nil {
		return nil
	}

	if typed, ok := AsError(err); ok {
		return typed.withContext(append([]string{"operation", operation}, kv...)...)
	}

	message, status, header := extract(err)
	e := &Error{Status: status, Message: message, Cause: err}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		if quotaExhausted(header) {
			e.Kind = KindRateLimit
			e.ResetAt = resetFromHeader(header)
		} else if mentionsScope(message) {
			e.Kind = KindAuth
			e.Message = "token lacks required scope or permission: " + message
		} else {
			e.Kind = KindAuth
		}
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
	case status == http.StatusTooManyRequests:
		e.Kind = KindRateLimit
		e.ResetAt = resetFromHeader(header)
	default:
		// Any other status, and failures with no status at all.
		e.Kind = KindAPI
	}

	return e.withContext(append([]string{"operation", operation}, kv...)...)
}
