package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/gitpulse-cli/internal/adapters/driven/auth"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage GitHub authentication",
	Long: `Save and inspect the Personal Access Token gitpulse uses.

The token needs the 'repo' scope for full repository discovery and
ideally 'read:org' so organisation repositories are complete.

Examples:
  # Save a token (prompted, input hidden)
  gitpulse auth login

  # Save a token non-interactively
  gitpulse auth login --token ghp_xxx

  # Show who the saved token authenticates as
  gitpulse auth status`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save a Personal Access Token",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the authenticated account and token health",
	RunE:  runAuthStatus,
}

var authLoginToken string

func init() {
	authLoginCmd.Flags().StringVar(
		&authLoginToken, "token", "", "Token value (prompts if omitted)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	token := strings.TrimSpace(authLoginToken)

	if token == "" {
		cmd.Print("Personal Access Token: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	}

	if token == "" {
		return fmt.Errorf("no token provided")
	}

	cfg, err := openConfig()
	if err != nil {
		return err
	}
	if err := cfg.Set(auth.ConfigKeyToken, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	cmd.Printf("Token saved to %s\n", cfg.Path())
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	principal, err := svc.ValidateScopes(context.Background())
	if err != nil {
		return friendly(err)
	}

	cmd.Printf("Authenticated as %s (%s, id %d)\n", principal.Login, principal.Type, principal.ID)
	return nil
}
