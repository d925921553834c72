package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gitpulse-cli/internal/github"
)

var (
	reposIncludeArchived bool
	reposIncludeForks    bool
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List every repository your token can see",
	Long: `List all repositories visible to the authenticated user: owned,
collaborator, and organisation repositories, deduplicated.

Archived repositories and forks are hidden by default.`,
	RunE: runRepos,
}

func init() {
	reposCmd.Flags().BoolVar(
		&reposIncludeArchived, "include-archived", false, "Include archived repositories")
	reposCmd.Flags().BoolVar(
		&reposIncludeForks, "include-forks", false, "Include forked repositories")
	rootCmd.AddCommand(reposCmd)
}

func runRepos(cmd *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	repos, err := svc.DiscoverRepositories(context.Background())
	if err != nil {
		return friendly(err)
	}

	repos = github.FilterRepositories(repos, reposIncludeArchived, reposIncludeForks)

	for _, r := range repos {
		visibility := "public"
		if r.Private {
			visibility = "private"
		}
		lang := r.Language
		if lang == "" {
			lang = "-"
		}
		cmd.Printf("%s\t%s\t%s\n", r.FullName, visibility, lang)
	}
	cmd.Printf("%d repositories\n", len(repos))
	return nil
}
