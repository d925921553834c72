package github

import (
	"errors"
	"net/http"
	"testing"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ghError builds a go-github error response with the given status,
// message, and headers.
func ghError(status int, message string, headers map[string]string) error {
	header := http.Header{}
	for k, v := range headers {
		header.Set(k, v)
	}
	return &gh.ErrorResponse{
		Response: &http.Response{StatusCode: status, Header: header},
		Message:  message,
	}
}

func TestClassify(t *testing.T) {
	t.Run("401 with exhausted quota headers is rate limit", func(t *testing.T) {
		raw := ghError(401, "API rate limit exceeded", map[string]string{
			"X-RateLimit-Remaining": "0",
			"X-RateLimit-Reset":     "1767225600",
		})

		err := Classify(raw, "list commits")

		e, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, KindRateLimit, e.Kind)
		assert.Equal(t, 401, e.Status)
		assert.Equal(t, time.Unix(1767225600, 0), e.ResetAt)
	})

	t.Run("403 mentioning scope is auth with permission message", func(t *testing.T) {
		raw := ghError(403, "requires the repo scope", nil)

		err := Classify(raw, "list repositories")

		e, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, KindAuth, e.Kind)
		assert.Contains(t, e.Message, "scope")
	})

	t.Run("401 without quota headers is auth", func(t *testing.T) {
		err := Classify(ghError(401, "Bad credentials", nil), "validate scopes")

		assert.True(t, IsAuth(err))
	})

	t.Run("404 is not found", func(t *testing.T) {
		err := Classify(ghError(404, "Not Found", nil), "list commits")

		assert.True(t, IsNotFound(err))
	})

	t.Run("429 is rate limit with parsed reset", func(t *testing.T) {
		raw := ghError(429, "too many requests", map[string]string{
			"X-RateLimit-Reset": "1767225600",
		})

		err := Classify(raw, "list commits")

		e, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, KindRateLimit, e.Kind)
		assert.Equal(t, time.Unix(1767225600, 0), e.ResetAt)
	})

	t.Run("500 is api error", func(t *testing.T) {
		err := Classify(ghError(500, "boom", nil), "list repositories")

		e, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, KindAPI, e.Kind)
		assert.Equal(t, 500, e.Status)
	})

	t.Run("statusless failure is api with zero status and cause kept", func(t *testing.T) {
		raw := errors.New("dial tcp: connection refused")

		err := Classify(raw, "list repositories")

		e, ok := AsError(err)
		require.True(t, ok)
		assert.Equal(t, KindAPI, e.Kind)
		assert.Equal(t, 0, e.Status)
		assert.ErrorIs(t, err, raw)
	})

	t.Run("go-github rate limit error type", func(t *testing.T) {
		raw := &gh.RateLimitError{
			Response: &http.Response{StatusCode: 403, Header: http.Header{
				"X-Ratelimit-Remaining": []string{"0"},
				"X-Ratelimit-Reset":     []string{"1767225600"},
			}},
			Message: "API rate limit exceeded",
		}

		err := Classify(raw, "list commits")

		assert.True(t, IsRateLimited(err))
	})

	t.Run("idempotent on typed errors", func(t *testing.T) {
		first := Classify(ghError(404, "Not Found", nil), "list commits", "repository", "octocat/hello-world")
		second := Classify(first, "fetch commits")

		e, ok := AsError(second)
		require.True(t, ok)
		assert.Equal(t, KindNotFound, e.Kind)
		assert.Equal(t, "octocat/hello-world", e.Context["repository"])
		// Re-classification only refreshes context, never the kind.
		assert.Same(t, first, second)
	})

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, Classify(nil, "noop"))
	})
}

func TestClassify_ContextDiagnostics(t *testing.T) {
	err := Classify(ghError(500, "boom", nil), "list commits", "repository", "acme/widgets")

	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "list commits", e.Context["operation"])
	assert.Equal(t, "acme/widgets", e.Context["repository"])
}

func TestError_Message(t *testing.T) {
	e := &Error{
		Kind:    KindRateLimit,
		Status:  403,
		ResetAt: time.Unix(1767225600, 0),
		Message: "quota exhausted",
	}

	msg := e.Error()

	assert.Contains(t, msg, "rate limit")
	assert.Contains(t, msg, "403")
	assert.Contains(t, msg, "resets at")
}

func TestKindHelpers(t *testing.T) {
	assert.True(t, IsConfig(newConfigError("bad input")))
	assert.False(t, IsConfig(errors.New("plain")))
	assert.True(t, IsAPI(&Error{Kind: KindAPI}))
	assert.False(t, IsRateLimited(&Error{Kind: KindAuth}))
}
