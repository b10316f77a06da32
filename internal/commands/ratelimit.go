package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) newRateLimitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ratelimit",
		Short: "Show the current GitHub API rate limit",
		RunE: func(cmd *cobra.Command, args []string) error {
			core, err := a.ensureSearcher().RateLimitStatus(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Limit:     %d\n", core.Limit)
			fmt.Fprintf(w, "Remaining: %d\n", core.Remaining)
			fmt.Fprintf(w, "Resets:    %s\n", core.Reset.Format(time.RFC3339))
			return nil
		},
	}
}
