// Package cli implements the cobra command tree for gitpulse.
//
// Commands are thin shells: they resolve configuration and
// credentials, hand them to the engine in internal/github, and render
// the results. All decisions about discovery, batching, and fallback
// live in the engine.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/gitpulse-cli/internal/adapters/driven/auth"
	"github.com/custodia-labs/gitpulse-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gitpulse-cli/internal/core/ports/driven"
	"github.com/custodia-labs/gitpulse-cli/internal/github"
	"github.com/custodia-labs/gitpulse-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	flagVerbose   bool
	flagConfigDir string
)

// Config store keys for engine options.
const (
	configKeyBatchSize = "engine.batch_size"
	configKeyScope     = "engine.scope"
)

var rootCmd = &cobra.Command{
	Use:   "gitpulse",
	Short: "Summarise GitHub activity across all repositories you can see",
	Long: `gitpulse discovers every repository your GitHub token can access
(personal, collaborator, and organisation repositories) and collects
commits across them for a date window.

Authentication uses a Personal Access Token with the 'repo' scope,
resolved from $GITPULSE_TOKEN, $GITHUB_TOKEN, a local .env file, or
the saved configuration ('gitpulse auth login').`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&flagVerbose, "verbose", "v", false, "Enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(
		&flagConfigDir, "config-dir", "", "Configuration directory (default ~/.gitpulse)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openConfig opens the TOML config store for the selected directory.
func openConfig() (driven.ConfigStore, error) {
	return file.NewConfigStore(flagConfigDir)
}

// newService builds an engine from configuration and credentials.
func newService() (*github.Service, error) {
	cfg, err := openConfig()
	if err != nil {
		return nil, err
	}

	provider := auth.Resolve(cfg)
	if !provider.IsAuthenticated() {
		return nil, auth.ErrNoToken
	}

	opts := github.Options{
		BatchSize:        cfg.GetInt(configKeyBatchSize),
		ScopeRequirement: cfg.GetString(configKeyScope),
	}

	return github.NewService(provider, opts), nil
}
