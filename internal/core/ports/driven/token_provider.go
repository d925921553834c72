package driven

import "context"

// TokenProvider provides access tokens for authenticated API calls.
// The engine never performs OAuth or App handshakes itself; it borrows
// whatever credential the provider hands out for the duration of a call.
type TokenProvider interface {
	// GetToken returns a valid access token.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated returns true if valid authentication is available.
	IsAuthenticated() bool
}
