package cli

import (
	"fmt"
	"time"

	"github.com/custodia-labs/gitpulse-cli/internal/github"
)

// friendly rewords engine errors for terminal users. Typed kinds get
// actionable messages; anything else passes through unchanged.
func friendly(err error) error {
	e, ok := github.AsError(err)
	if !ok {
		return err
	}

	switch e.Kind {
	case github.KindAuth:
		return fmt.Errorf("authentication failed: %s\nRun 'gitpulse auth login' with a token that has the 'repo' scope", e.Message)
	case github.KindRateLimit:
		if !e.ResetAt.IsZero() {
			return fmt.Errorf("GitHub API rate limit exceeded, try again after %s", e.ResetAt.Format(time.RFC1123))
		}
		return fmt.Errorf("GitHub API rate limit exceeded, try again later")
	case github.KindNotFound:
		return fmt.Errorf("not found: %s", e.Message)
	default:
		return err
	}
}
