package github

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/gitpulse-cli/internal/core/domain"
	"github.com/custodia-labs/gitpulse-cli/internal/logger"
)

// commitLister is the per-repository collection dependency of the
// orchestrator. Service implements it itself; tests substitute an
// instrumented fake.
type commitLister interface {
	ListCommitsWindow(
		ctx context.Context, owner, repo string, since, until time.Time, author string,
	) ([]domain.Commit, error)
}

// FetchCommits collects commits across many repositories for the
// [since, until) window. Repositories are given as "owner/name".
//
// Repositories are processed in fixed-size batches: requests within a
// batch run concurrently, batches run one after another, so peak
// in-flight requests never exceed the configured batch size.
//
// When an author filter yields nothing the filter is relaxed in
// tiers: first the filter as given, then the owner login of the first
// repository (commit author fields are often populated with the owner
// account when commits land through automation), then no filter at
// all. The first non-empty accumulation wins; the unfiltered result
// is returned even when empty. Callers preferring strict author
// matching must treat a non-matching tier-one result themselves.
//
// A single repository's failure aborts the whole call. Masking it
// while also relaxing the filter would make completeness claims
// unverifiable; callers wanting partial-failure tolerance wrap
// individual repositories.
//
// The final commit order reflects batch submission order and is
// otherwise unspecified; callers should sort when order matters.
func (s *Service) FetchCommits(
	ctx context.Context, repositories []string, since, until time.Time, author string,
) ([]domain.Commit, error) {
	if ctx == nil {
		return nil, newConfigError("nil context")
	}
	if len(repositories) == 0 {
		return []domain.Commit{}, nil
	}

	// Malformed entries are caller bugs; reject before any fetch.
	firstOwner, _, err := splitFullName(repositories[0])
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()[:8]
	logger.Debug("run %s: fetching commits for %d repositories, window %s to %s",
		runID, len(repositories), since.Format(time.RFC3339), until.Format(time.RFC3339))

	commits, err := s.collectBatches(ctx, repositories, since, until, author, runID)
	if err != nil {
		return nil, err
	}
	if len(commits) > 0 || author == "" {
		return commits, nil
	}

	// Tier two: retry with the owner login of the first repository.
	if firstOwner != author {
		logger.Debug("run %s: no commits for author %q, retrying with owner login %q",
			runID, author, firstOwner)
		commits, err = s.collectBatches(ctx, repositories, since, until, firstOwner, runID)
		if err != nil {
			return nil, err
		}
		if len(commits) > 0 {
			return commits, nil
		}
	}

	// Tier three: drop the filter entirely. Over-reporting beats
	// silently returning nothing on an author mismatch.
	logger.Debug("run %s: still no commits, dropping author filter", runID)
	return s.collectBatches(ctx, repositories, since, until, "", runID)
}

// collectBatches fans ListCommitsWindow out over the repositories in
// sequential batches of the configured size. Results merge only after
// each batch's join barrier, so no locking is needed: every task owns
// a disjoint slot.
func (s *Service) collectBatches(
	ctx context.Context, repositories []string, since, until time.Time, author, runID string,
) ([]domain.Commit, error) {
	var all []domain.Commit

	for start := 0; start < len(repositories); start += s.opts.BatchSize {
		end := start + s.opts.BatchSize
		if end > len(repositories) {
			end = len(repositories)
		}
		batch := repositories[start:end]

		results := make([][]domain.Commit, len(batch))
		errs := make([]error, len(batch))

		var wg sync.WaitGroup
		for i, fullName := range batch {
			owner, name, err := splitFullName(fullName)
			if err != nil {
				errs[i] = err
				continue
			}

			wg.Add(1)
			go func(slot int, owner, name string) {
				defer wg.Done()
				results[slot], errs[slot] = s.lister.ListCommitsWindow(
					ctx, owner, name, since, until, author)
			}(i, owner, name)
		}
		wg.Wait()

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
		for _, r := range results {
			all = append(all, r...)
		}

		logger.Debug("run %s: batch of %d done, %d commits so far", runID, len(batch), len(all))
	}

	if all == nil {
		all = []domain.Commit{}
	}
	return all, nil
}

// splitFullName parses "owner/name" into its parts.
func splitFullName(fullName string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", newConfigError("invalid repository %q, want owner/name", fullName)
	}
	return owner, name, nil
}
