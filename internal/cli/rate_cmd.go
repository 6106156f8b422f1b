package cli

import (
	"fmt"
	"strconv"

	liteapp "github.com/alexanderramin/lite/internal/app"
	"github.com/alexanderramin/lite/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rate ID RATING",
		Short: "Give a movie your own 0-10 rating",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("rating %q is not a number", args[1])
			}
			res, err := app.Profile.SetPersonalRating(cmd.Context(), liteapp.RateRequest{ItemID: args[0], Rating: rating})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMutation(res, fmt.Sprintf("Rated %.1f:", rating)))
			return nil
		},
	}
}
