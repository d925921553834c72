package github

import (
	"context"
	"net/http"
	"strings"

	"github.com/custodia-labs/gitpulse-cli/internal/core/domain"
	"github.com/custodia-labs/gitpulse-cli/internal/logger"
)

const (
	// headerOAuthScopes carries the token's granted scopes on every
	// authenticated response.
	headerOAuthScopes = "X-OAuth-Scopes"

	// orgReadScope is needed to enumerate organisation membership.
	// Its absence degrades organisation discovery, it is not fatal.
	orgReadScope = "read:org"
)

// parseScopeHeader splits the comma-separated scopes header into a
// normalised slice. Returns nil for an empty header.
func parseScopeHeader(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	scopes := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			scopes = append(scopes, part)
		}
	}
	return scopes
}

// hasScope reports whether want is among the granted scopes.
func hasScope(scopes []string, want string) bool {
	for _, s := range scopes {
		if s == want {
			return true
		}
	}
	return false
}

// ValidateScopes retrieves the authenticated principal and asserts
// the token carries the required scope. Missing the required scope is
// fatal: discovery would silently return an incomplete repository set
// otherwise. Missing read:org only degrades organisation discovery
// and is reported as a warning.
func (s *Service) ValidateScopes(ctx context.Context) (*domain.Principal, error) {
	user, header, err := s.client.CurrentUser(ctx)
	if err != nil {
		return nil, Classify(err, "validate scopes")
	}

	scopes := parseScopeHeader(header.Get(headerOAuthScopes))

	if !hasScope(scopes, s.opts.ScopeRequirement) {
		return nil, (&Error{
			Kind:    KindAuth,
			Status:  http.StatusForbidden,
			Message: "token is missing the '" + s.opts.ScopeRequirement + "' scope required for repository discovery",
		}).withContext("operation", "validate scopes")
	}

	if !hasScope(scopes, orgReadScope) {
		logger.Warn("token is missing the '%s' scope; organisation repositories may be incomplete", orgReadScope)
	}

	return &domain.Principal{
		Login: user.GetLogin(),
		ID:    user.GetID(),
		Type:  user.GetType(),
	}, nil
}
