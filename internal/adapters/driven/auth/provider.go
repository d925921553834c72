// Package auth supplies token providers for the GitHub engine.
//
// The engine never acquires credentials itself; it borrows whatever
// token these providers hand out. Tokens are resolved in order of
// precedence: process environment (optionally seeded from a .env
// file), then the persisted configuration store.
package auth

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/gitpulse-cli/internal/core/ports/driven"
	"github.com/custodia-labs/gitpulse-cli/internal/logger"
)

// Environment variables checked for a token, in order.
const (
	EnvToken       = "GITPULSE_TOKEN"
	EnvGitHubToken = "GITHUB_TOKEN"
)

// ConfigKeyToken is the config store key holding a persisted PAT.
const ConfigKeyToken = "github.token"

// ErrNoToken indicates no token could be resolved from any source.
var ErrNoToken = errors.New("auth: no GitHub token configured")

// Ensure StaticProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*StaticProvider)(nil)

// StaticProvider provides a fixed Personal Access Token.
// PATs don't expire, so no refresh logic is needed.
type StaticProvider struct {
	token string
}

// NewStaticProvider creates a provider around a fixed token.
func NewStaticProvider(token string) *StaticProvider {
	return &StaticProvider{token: token}
}

// GetToken returns the token, or ErrNoToken when empty.
func (p *StaticProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", ErrNoToken
	}
	return p.token, nil
}

// IsAuthenticated returns true if a token is present.
func (p *StaticProvider) IsAuthenticated() bool {
	return p.token != ""
}

// Resolve builds a token provider from the environment and the
// config store. A .env file in the working directory is loaded first
// if present; environment variables win over the persisted token.
// The returned provider may be unauthenticated - callers decide
// whether that is fatal.
func Resolve(cfg driven.ConfigStore) *StaticProvider {
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	if token := os.Getenv(EnvToken); token != "" {
		return NewStaticProvider(token)
	}
	if token := os.Getenv(EnvGitHubToken); token != "" {
		return NewStaticProvider(token)
	}
	if cfg != nil {
		if token := cfg.GetString(ConfigKeyToken); token != "" {
			return NewStaticProvider(token)
		}
	}

	return NewStaticProvider("")
}
