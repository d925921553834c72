package github

import (
	"context"
	"sort"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/gitpulse-cli/internal/core/domain"
)

// ListCommitsWindow fetches every commit of owner/repo authored in
// [since, until), optionally constrained to an author login or email.
// The author value is passed through to the API untouched; this
// engine does not reinterpret it. Every returned commit carries the
// owning repository's full name.
//
// Failures are classified and propagated. Callers can therefore tell
// "no commits" apart from "fetch failed"; per-repository recovery is
// an orchestrator decision, not a collector one.
func (s *Service) ListCommitsWindow(
	ctx context.Context, owner, repo string, since, until time.Time, author string,
) ([]domain.Commit, error) {
	fullName := owner + "/" + repo

	opts := &gh.CommitsListOptions{
		Since:       since,
		Until:       until,
		Author:      author,
		ListOptions: gh.ListOptions{PerPage: s.opts.PerPage},
	}

	raw, err := s.client.ListCommits(ctx, owner, repo, opts)
	if err != nil {
		return nil, Classify(err, "list commits", "repository", fullName)
	}

	commits := make([]domain.Commit, 0, len(raw))
	for _, c := range raw {
		commits = append(commits, fromGitHubCommit(fullName, c))
	}
	return commits, nil
}

// SortCommitsByDate orders commits newest first, in place. The
// engine itself guarantees no particular order; presentation layers
// call this when a stable order matters.
func SortCommitsByDate(commits []domain.Commit) {
	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].AuthorDate.After(commits[j].AuthorDate)
	})
}

// fromGitHubCommit converts an API commit into the domain
// representation, attaching the owning repository's identity.
func fromGitHubCommit(fullName string, c *gh.RepositoryCommit) domain.Commit {
	commit := domain.Commit{
		SHA:        c.GetSHA(),
		Repository: fullName,
		HTMLURL:    c.GetHTMLURL(),
	}

	if inner := c.Commit; inner != nil {
		commit.Message = inner.GetMessage()
		if author := inner.Author; author != nil {
			commit.AuthorName = author.GetName()
			commit.AuthorDate = author.GetDate().Time
		}
	}

	// The top-level author is the resolved GitHub account, which may
	// be absent when the commit email matches no account.
	if user := c.Author; user != nil {
		commit.AuthorLogin = user.GetLogin()
		commit.AuthorAvatarURL = user.GetAvatarURL()
	}

	return commit
}
