package commands

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func (a *App) newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [flags]",
		Short: "Run update on a fixed schedule until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			every, _ := cmd.Flags().GetDuration("every")
			return a.RunWatch(cmd.Context(), cmd.OutOrStdout(), every)
		},
	}
	cmd.Flags().Duration("every", time.Hour, "Interval between updates")
	return cmd
}

// RunWatch runs an update immediately, then again on every tick until the
// context is canceled or an interrupt arrives. Failures of individual runs
// are logged; the loop keeps going so one bad cycle does not stop the
// schedule.
func (a *App) RunWatch(ctx context.Context, w io.Writer, every time.Duration) error {
	if every <= 0 {
		return fmt.Errorf("watch interval must be positive, got %s", every)
	}

	runOnce := func() {
		if err := a.RunUpdate(ctx, w); err != nil {
			log.Printf("scheduled update failed: %v", err)
		}
		if err := a.SaveCache(); err != nil {
			log.Printf("saving cache: %v", err)
		}
	}

	runOnce()

	c := cron.New(cron.WithLogger(cron.DefaultLogger))
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", every), runOnce); err != nil {
		return fmt.Errorf("scheduling updates: %w", err)
	}
	c.Start()
	defer c.Stop()

	fmt.Fprintf(w, "\nWatching; next update in %s (interrupt to stop)\n", every)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case <-ctx.Done():
	case <-sig:
	}
	fmt.Fprintln(w, "Stopping watch")
	return nil
}
