package cli

import (
	"fmt"

	liteapp "github.com/alexanderramin/lite/internal/app"
	"github.com/alexanderramin/lite/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const defaultLimit = 10

// rankFlags are the options shared by every command that prints a ranked list.
type rankFlags struct {
	limit   int
	context contextFlag
	explain bool
}

func (f *rankFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.limit, "limit", defaultLimit, "Maximum number of titles to show (0 for all)")
	cmd.Flags().Var(&f.context, "context", "Viewing context")
	cmd.Flags().BoolVar(&f.explain, "explain", false, "Show how each score was built")
}

func (f *rankFlags) apply(req *liteapp.RecommendRequest) {
	req.Limit = f.limit
	req.Context = f.context.value
}

func newRecommendCmd(app *App) *cobra.Command {
	var flags rankFlags
	var seed, genre, search string

	cmd := &cobra.Command{
		Use:     "recommend",
		Aliases: []string{"rec"},
		Short:   "Rank the catalog against your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := liteapp.NewRecommendRequest()
			req.SeedID = seed
			if genre != "" {
				req.Genre = genre
			}
			req.Search = search
			flags.apply(&req)

			resp, err := app.Recommend.Recommend(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecommendations(resp, flags.explain))
			return nil
		},
	}

	cmd.Flags().StringVar(&seed, "seed", "", "Rank by genre overlap with this movie id")
	cmd.Flags().StringVar(&genre, "genre", "", "Only show this genre")
	cmd.Flags().StringVar(&search, "search", "", "Match title, genre or keyword")
	flags.register(cmd)

	return cmd
}

func newRotationCmd(app *App) *cobra.Command {
	var flags rankFlags

	cmd := &cobra.Command{
		Use:   "rotation",
		Short: "Titles you keep coming back to",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := liteapp.NewRecommendRequest()
			req.HeavyRotationOnly = true
			flags.apply(&req)

			resp, err := app.Recommend.Recommend(cmd.Context(), req)
			if err != nil {
				return err
			}
			if len(resp.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Nothing in heavy rotation yet."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecommendations(resp, flags.explain))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
