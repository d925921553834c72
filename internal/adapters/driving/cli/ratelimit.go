package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var ratelimitCmd = &cobra.Command{
	Use:   "ratelimit",
	Short: "Show the current API quota",
	RunE:  runRatelimit,
}

func init() {
	rootCmd.AddCommand(ratelimitCmd)
}

func runRatelimit(cmd *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	info, err := svc.CheckRateLimit(context.Background())
	if err != nil {
		return friendly(err)
	}

	cmd.Printf("%d of %d requests remaining, resets at %s\n",
		info.Remaining, info.Limit, info.ResetAt.Format(time.RFC3339))
	return nil
}
