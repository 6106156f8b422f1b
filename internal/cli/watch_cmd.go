package cli

import (
	"errors"
	"fmt"
	"time"

	liteapp "github.com/alexanderramin/lite/internal/app"
	"github.com/alexanderramin/lite/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	var hours float64
	var at string

	cmd := &cobra.Command{
		Use:   "watch ID",
		Short: "Log time spent watching a movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			req := liteapp.LogWatchRequest{ItemID: id, DurationHours: hours}

			if !cmd.Flags().Changed("hours") {
				if !app.interactive() {
					return errors.New("--hours is required when not running interactively")
				}
				title := id
				if item, ok := app.Catalog.Lookup(id); ok {
					title = item.Title
				}
				h, err := app.promptHours(title)
				if err != nil {
					return err
				}
				req.DurationHours = h
			}

			if at != "" {
				ts, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at %q: use RFC 3339, e.g. 2025-06-15T20:00:00Z", at)
				}
				req.At = &ts
			}

			res, err := app.Profile.LogWatch(cmd.Context(), req)
			if err != nil {
				return err
			}
			action := fmt.Sprintf("Logged %s of", formatter.FormatHours(req.DurationHours))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMutation(res, action))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours watched")
	cmd.Flags().StringVar(&at, "at", "", "When you watched it (RFC 3339, default now)")

	return cmd
}
