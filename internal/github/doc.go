// Package github implements the GitHub activity aggregation engine.
//
// The engine discovers every repository the authenticated principal
// can see and collects commits across an arbitrary subset of those
// repositories for a date window, with deduplication, rate-limit
// defense, and a tiered author-matching fallback.
//
// # Architecture
//
// The engine comprises the following components:
//
//   - Service: the public surface (discovery, commit collection,
//     quota checks)
//   - Client: go-github wrapper with rate limiting and exhaustive
//     pagination
//   - RateLimiter: proactive token bucket plus reactive quota-header
//     tracking
//   - Classify: maps raw API failures onto the flat error taxonomy
//
// # Repository Discovery
//
// DiscoverRepositories first validates the token's scopes via the
// authenticated-user endpoint. A token without the 'repo' scope fails
// outright, because discovery would otherwise silently return an
// incomplete set. It then lists repositories through the combined
// affiliation filter (owner, collaborator, organisation member) and
// supplements the result with each organisation's full repository
// list. Organisation failures degrade gracefully; the primary listing
// does not. The union is deduplicated by full name.
//
// # Commit Collection
//
// FetchCommits fans per-repository fetches out in fixed-size batches:
// concurrent within a batch, sequential across batches, so peak
// in-flight requests equal the batch size. When an author filter
// matches nothing, the filter is relaxed in tiers — owner login of
// the first repository, then no filter — trading precision for
// recall so a window query never comes back empty just because the
// author spelling didn't match.
//
// # Rate Limiting
//
// Two strategies run together:
//
//  1. Proactive throttling: a token bucket spaces requests at roughly
//     1.2 per second, staying under the 5,000/hour quota.
//
//  2. Reactive handling: X-RateLimit-Remaining and X-RateLimit-Reset
//     headers are tracked on every response. With the quota exhausted,
//     calls wait for the advertised reset.
//
// CheckRateLimit additionally exposes an advisory snapshot of the
// quota; its failures never abort a caller's operation.
//
// # Error Handling
//
// Every failure surfaced by this package is one *Error carrying a
// Kind: Config, Auth, NotFound, RateLimit, or API. Classify applies
// the mapping (quota headers first on 401/403, then scope wording,
// status fallbacks otherwise) and is idempotent on already-typed
// errors. Callers branch on kinds via IsAuth, IsRateLimited, and
// friends.
//
// # Example Usage
//
//	svc := github.NewService(tokenProvider, github.Options{})
//
//	repos, err := svc.DiscoverRepositories(ctx)
//	if err != nil {
//	    return err
//	}
//
//	names := make([]string, len(repos))
//	for i, r := range repos {
//	    names[i] = r.FullName
//	}
//
//	commits, err := svc.FetchCommits(ctx, names, since, until, "octocat")
package github
