package github

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/gitpulse-cli/internal/core/ports/driven"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client wraps the go-github client with quota defense and
// exhaustive pagination. Methods return raw go-github values and raw
// errors; callers classify failures via Classify. The client is safe
// for concurrent use once initialised.
type Client struct {
	gh            *gh.Client
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter
}

// NewClient creates a GitHub API client with a token provider.
// The underlying client is initialised lazily so the token is only
// requested when the first call is made.
func NewClient(tokenProvider driven.TokenProvider) *Client {
	return &Client{
		tokenProvider: tokenProvider,
		rateLimiter:   NewRateLimiter(),
	}
}

// NewClientWithHTTPClient creates a client over a caller-supplied
// http.Client. The caller owns credential handling on that client.
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{
		gh:          gh.NewClient(httpClient),
		rateLimiter: NewRateLimiter(),
	}
}

// NewClientWithToken creates a client bound to a static access token.
// Works for both PAT and OAuth access tokens.
func NewClientWithToken(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout

	return &Client{
		gh:          gh.NewClient(tc),
		rateLimiter: NewRateLimiter(),
	}
}

// ensureClient initialises the go-github client if not already done.
func (c *Client) ensureClient(ctx context.Context) error {
	if c.gh != nil {
		return nil
	}
	if c.tokenProvider == nil {
		return newConfigError("no token provider configured")
	}

	token, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout
	c.gh = gh.NewClient(tc)

	return nil
}

// GitHub returns the underlying go-github client.
func (c *Client) GitHub() *gh.Client {
	return c.gh
}

// RateLimiter returns the client's rate limiter.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// CurrentUser fetches the authenticated principal along with the
// response headers, which carry the token's granted scopes.
func (c *Client) CurrentUser(ctx context.Context) (*gh.User, http.Header, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, nil, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, nil, err
	}

	user, resp, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return nil, nil, err
	}

	c.updateRateLimitFromResponse(resp)
	return user, resp.Header, nil
}

// ListAuthenticatedRepos returns every repository reachable via
// combined affiliation (owner, collaborator, organisation member)
// with full visibility, following pagination to exhaustion.
func (c *Client) ListAuthenticatedRepos(ctx context.Context, perPage int) ([]*gh.Repository, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	var all []*gh.Repository

	opts := &gh.RepositoryListByAuthenticatedUserOptions{
		Visibility:  "all",
		Affiliation: "owner,collaborator,organization_member",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		repos, resp, err := c.gh.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, err
		}

		c.updateRateLimitFromResponse(resp)
		all = append(all, repos...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// ListOrganizations returns every organisation the principal belongs
// to, following pagination to exhaustion.
func (c *Client) ListOrganizations(ctx context.Context, perPage int) ([]*gh.Organization, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	var all []*gh.Organization

	opts := &gh.ListOptions{PerPage: perPage}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		orgs, resp, err := c.gh.Organizations.List(ctx, "", opts)
		if err != nil {
			return nil, err
		}

		c.updateRateLimitFromResponse(resp)
		all = append(all, orgs...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// ListOrgRepos returns every repository of one organisation,
// following pagination to exhaustion.
func (c *Client) ListOrgRepos(ctx context.Context, org string, perPage int) ([]*gh.Repository, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	var all []*gh.Repository

	opts := &gh.RepositoryListByOrgOptions{
		Type:        "all",
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		repos, resp, err := c.gh.Repositories.ListByOrg(ctx, org, opts)
		if err != nil {
			return nil, err
		}

		c.updateRateLimitFromResponse(resp)
		all = append(all, repos...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// ListCommits returns every commit of one repository matching opts,
// following pagination to exhaustion.
func (c *Client) ListCommits(
	ctx context.Context, owner, repo string, opts *gh.CommitsListOptions,
) ([]*gh.RepositoryCommit, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	var all []*gh.RepositoryCommit

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		commits, resp, err := c.gh.Repositories.ListCommits(ctx, owner, repo, opts)
		if err != nil {
			return nil, err
		}

		c.updateRateLimitFromResponse(resp)
		all = append(all, commits...)

		if resp.NextPage == 0 {
			break
		}
		opts.ListOptions.Page = resp.NextPage
	}

	return all, nil
}

// CoreRateLimit fetches the current core API quota.
func (c *Client) CoreRateLimit(ctx context.Context) (*gh.Rate, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	limits, resp, err := c.gh.RateLimit.Get(ctx)
	if err != nil {
		return nil, err
	}

	c.updateRateLimitFromResponse(resp)

	if limits == nil || limits.Core == nil {
		return nil, fmt.Errorf("rate limit response missing core resource")
	}
	return limits.Core, nil
}

// updateRateLimitFromResponse records quota headers off a response.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}
