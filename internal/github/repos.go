package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/gitpulse-cli/internal/core/domain"
	"github.com/custodia-labs/gitpulse-cli/internal/logger"
)

// DiscoverRepositories returns every repository visible to the
// authenticated principal, deduplicated by full name.
//
// Discovery runs in two passes. The combined-affiliation listing
// (owner, collaborator, organisation member) is the primary source
// and any failure there is fatal. Organisation enumeration and
// per-organisation listing are secondary: a failing organisation is
// logged and skipped, because partial data beats no data.
func (s *Service) DiscoverRepositories(ctx context.Context) ([]domain.Repository, error) {
	principal, err := s.ValidateScopes(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovering repositories for %s", principal.Login)

	s.checkRateLimitAdvisory(ctx)

	primary, err := s.client.ListAuthenticatedRepos(ctx, s.opts.PerPage)
	if err != nil {
		return nil, Classify(err, "list repositories")
	}
	logger.Debug("combined-affiliation listing returned %d repositories", len(primary))

	all := make([]domain.Repository, 0, len(primary))
	for _, r := range primary {
		all = append(all, fromGitHubRepository(r))
	}

	orgs, err := s.client.ListOrganizations(ctx, s.opts.PerPage)
	if err != nil {
		logger.Warn("listing organisations failed, continuing with affiliation results: %v", err)
		orgs = nil
	}

	for _, org := range orgs {
		login := org.GetLogin()
		repos, err := s.client.ListOrgRepos(ctx, login, s.opts.PerPage)
		if err != nil {
			logger.Warn("listing repositories for organisation %s failed, skipping: %v", login, err)
			continue
		}
		logger.Debug("organisation %s contributed %d repositories", login, len(repos))
		for _, r := range repos {
			all = append(all, fromGitHubRepository(r))
		}
	}

	return DedupeRepositories(all), nil
}

// DedupeRepositories removes entries sharing a FullName, keeping the
// first occurrence and the incoming order. Idempotent.
func DedupeRepositories(repos []domain.Repository) []domain.Repository {
	seen := make(map[string]struct{}, len(repos))
	unique := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		if _, ok := seen[r.FullName]; ok {
			continue
		}
		seen[r.FullName] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

// FilterRepositories drops archived and forked repositories unless
// explicitly included.
func FilterRepositories(repos []domain.Repository, includeArchived, includeForks bool) []domain.Repository {
	filtered := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		if r.Archived && !includeArchived {
			continue
		}
		if r.Fork && !includeForks {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// fromGitHubRepository converts an API repository into the domain
// representation.
func fromGitHubRepository(r *gh.Repository) domain.Repository {
	return domain.Repository{
		ID:         r.GetID(),
		Name:       r.GetName(),
		FullName:   r.GetFullName(),
		OwnerLogin: r.GetOwner().GetLogin(),
		Private:    r.GetPrivate(),
		Language:   r.GetLanguage(),
		HTMLURL:    r.GetHTMLURL(),
		Archived:   r.GetArchived(),
		Fork:       r.GetFork(),
	}
}
