package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/robby/pickforme/internal/domain"
	"github.com/robby/pickforme/internal/store"
	"github.com/spf13/cobra"
)

// errPickAbandoned is returned when a pick could not resolve, e.g. because
// it was canceled while thinking.
var errPickAbandoned = errors.New("pick was abandoned")

func newRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll <option>...",
		Short: "Pick one option without the interactive UI",
		Example: `  pickforme roll Pizza Sushi Tacos
  pickforme roll --delay 0 --seed 7 heads tails`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closeLog, err := setup(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			s := newStore(cfg, logger, args)
			_, err = roll(ctx, s, cfg.Delay, cmd.OutOrStdout())
			return err
		},
	}
}

// roll runs one pick on s, waiting delay before resolving it.
// Canceling ctx abandons the pick.
func roll(ctx context.Context, s *store.Store, delay time.Duration, out io.Writer) (domain.Option, error) {
	ticket, err := s.BeginPick()
	if err != nil {
		return domain.Option{}, err
	}
	fmt.Fprintln(out, "Thinking...")

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.CancelPick()
		return domain.Option{}, ctx.Err()
	case <-timer.C:
	}

	opt, ok := s.ResolvePick(ticket)
	if !ok {
		return domain.Option{}, errPickAbandoned
	}
	fmt.Fprintf(out, "I picked: %s\n", opt.Text)
	return opt, nil
}
