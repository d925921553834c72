package github

import (
	"github.com/custodia-labs/gitpulse-cli/internal/core/ports/driven"
)

// Service is the engine's public surface: repository discovery,
// windowed commit collection across many repositories, and advisory
// quota checks. Construct one per credential; it is safe for
// concurrent use.
type Service struct {
	client *Client
	opts   Options
	lister commitLister
}

// NewService creates an engine bound to the given token provider.
func NewService(tokenProvider driven.TokenProvider, opts Options) *Service {
	s := &Service{
		client: NewClient(tokenProvider),
		opts:   opts.withDefaults(),
	}
	s.lister = s
	return s
}

// NewServiceWithClient creates an engine over an existing client.
// Used where the caller already holds a configured client, and by
// tests pointing the client at a stub server.
func NewServiceWithClient(client *Client, opts Options) *Service {
	s := &Service{
		client: client,
		opts:   opts.withDefaults(),
	}
	s.lister = s
	return s
}

// Client returns the underlying API client.
func (s *Service) Client() *Client {
	return s.client
}
