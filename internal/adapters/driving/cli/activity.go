package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gitpulse-cli/internal/github"
)

var (
	activitySince  string
	activityUntil  string
	activityAuthor string
	activityRepos  []string
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Collect commits across repositories for a date window",
	Long: `Collect commits across a set of repositories for a date window.

Without --repos, every repository visible to the token is used.
Timestamps accept RFC 3339 ("2026-08-01T00:00:00Z") or plain dates
("2026-08-01"). The window is inclusive of --since and exclusive of
--until; --until defaults to now, --since to seven days before.

When --author matches nothing, the filter is relaxed automatically:
first to the owner of the first repository, then dropped entirely, so
an author spelling mismatch over-reports instead of hiding activity.

Examples:
  gitpulse activity --since 2026-08-01 --until 2026-08-29
  gitpulse activity --author octocat --repos octocat/hello-world`,
	RunE: runActivity,
}

func init() {
	activityCmd.Flags().StringVar(
		&activitySince, "since", "", "Window start (inclusive)")
	activityCmd.Flags().StringVar(
		&activityUntil, "until", "", "Window end (exclusive)")
	activityCmd.Flags().StringVar(
		&activityAuthor, "author", "", "Author login or committer identity filter")
	activityCmd.Flags().StringSliceVar(
		&activityRepos, "repos", nil, "Repositories as owner/name (default: all visible)")
	rootCmd.AddCommand(activityCmd)
}

// parseTimeFlag accepts RFC 3339 instants and plain dates.
func parseTimeFlag(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q, want RFC 3339 or YYYY-MM-DD", value)
}

// resolveWindow applies the flag defaults: until = now, since = seven
// days earlier.
func resolveWindow(sinceFlag, untilFlag string, now time.Time) (since, until time.Time, err error) {
	until = now
	if untilFlag != "" {
		if until, err = parseTimeFlag(untilFlag); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	since = until.AddDate(0, 0, -7)
	if sinceFlag != "" {
		if since, err = parseTimeFlag(sinceFlag); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if until.Before(since) {
		return time.Time{}, time.Time{}, fmt.Errorf("--until is before --since")
	}
	return since, until, nil
}

func runActivity(cmd *cobra.Command, _ []string) error {
	since, until, err := resolveWindow(activitySince, activityUntil, time.Now().UTC())
	if err != nil {
		return err
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	ctx := context.Background()

	targets := activityRepos
	if len(targets) == 0 {
		repos, err := svc.DiscoverRepositories(ctx)
		if err != nil {
			return friendly(err)
		}
		repos = github.FilterRepositories(repos, false, false)
		for _, r := range repos {
			targets = append(targets, r.FullName)
		}
	}

	commits, err := svc.FetchCommits(ctx, targets, since, until, activityAuthor)
	if err != nil {
		return friendly(err)
	}

	github.SortCommitsByDate(commits)

	for _, c := range commits {
		subject, _, _ := strings.Cut(c.Message, "\n")
		cmd.Printf("%s  %s  %-20s  %s\n",
			c.AuthorDate.Format("2006-01-02 15:04"), shortSHA(c.SHA), c.Repository, subject)
	}
	cmd.Printf("%d commits across %d repositories\n", len(commits), len(targets))
	return nil
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
