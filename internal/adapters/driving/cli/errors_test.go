package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/gitpulse-cli/internal/github"
)

func TestFriendly(t *testing.T) {
	t.Run("auth errors suggest re-authentication", func(t *testing.T) {
		err := friendly(&github.Error{Kind: github.KindAuth, Message: "bad credentials"})

		assert.Contains(t, err.Error(), "gitpulse auth login")
	})

	t.Run("rate limit errors show the reset time", func(t *testing.T) {
		resetAt := time.Date(2026, 8, 29, 19, 0, 0, 0, time.UTC)
		err := friendly(&github.Error{Kind: github.KindRateLimit, ResetAt: resetAt})

		assert.Contains(t, err.Error(), "rate limit")
		assert.Contains(t, err.Error(), "2026")
	})

	t.Run("rate limit without reset time", func(t *testing.T) {
		err := friendly(&github.Error{Kind: github.KindRateLimit})

		assert.Contains(t, err.Error(), "try again later")
	})

	t.Run("not found stays plain", func(t *testing.T) {
		err := friendly(&github.Error{Kind: github.KindNotFound, Message: "no such repo"})

		assert.Contains(t, err.Error(), "no such repo")
	})

	t.Run("untyped errors pass through", func(t *testing.T) {
		raw := errors.New("disk full")

		assert.Same(t, raw, friendly(raw))
	})

	t.Run("api errors pass through unchanged", func(t *testing.T) {
		raw := &github.Error{Kind: github.KindAPI, Status: 500, Message: "boom"}

		assert.Equal(t, error(raw), friendly(raw))
	})
}
