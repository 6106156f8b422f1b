package cli

import (
	"fmt"

	"github.com/alexanderramin/lite/internal/cli/formatter"
	"github.com/alexanderramin/lite/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect and tune your viewing profile",
	}
	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileWeightsCmd(app),
		newProfileResetEngagementCmd(app),
	)
	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show watch totals, top genres, buckets and weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := app.Profile.Summary(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfileSummary(sum, app.now()))
			return nil
		},
	}
}

func newProfileWeightsCmd(app *App) *cobra.Command {
	var genre, wishlist, imdb, rating float64

	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Show or change the ranking weights",
		Long: `Show the ranking weights, or change them with flags.

Only the flags you pass are changed:
  lite profile weights --genre 6 --wishlist 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.WeightsPatch
			if cmd.Flags().Changed("genre") {
				patch.GenreWeight = &genre
			}
			if cmd.Flags().Changed("wishlist") {
				patch.WishlistMultiplier = &wishlist
			}
			if cmd.Flags().Changed("imdb") {
				patch.ImdbWeight = &imdb
			}
			if cmd.Flags().Changed("rating") {
				patch.RatingWeight = &rating
			}

			if patch.Empty() {
				p, err := app.Profile.Profile(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeights(p.EngineWeights))
				return nil
			}

			res, err := app.Profile.UpdateWeights(cmd.Context(), patch)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMutation(res, "Weights updated"))
			if res.Profile != nil {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeights(res.Profile.EngineWeights))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&genre, "genre", 0, "Points per hour of genre engagement")
	cmd.Flags().Float64Var(&wishlist, "wishlist", 0, "Multiplier for wishlisted titles (at least 1)")
	cmd.Flags().Float64Var(&imdb, "imdb", 0, "Points per IMDb rating point")
	cmd.Flags().Float64Var(&rating, "rating", 0, "Points per personal rating point")

	return cmd
}

func newProfileResetEngagementCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset-engagement",
		Short: "Forget per-genre watch hours",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && app.interactive() {
				ok, err := app.confirm("Reset all genre engagement?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}
			res, err := app.Profile.ResetEngagement(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMutation(res, "Genre engagement reset"))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
