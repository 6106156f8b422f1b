package cli

import (
	"fmt"

	liteapp "github.com/alexanderramin/lite/internal/app"
	"github.com/alexanderramin/lite/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBucketCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bucket",
		Short: "File movies under Day or Night viewing",
	}
	cmd.AddCommand(newBucketSetCmd(app), newBucketClearCmd(app), newBucketListCmd(app))
	return cmd
}

func newBucketSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set ID day|night",
		Short: "Put a movie in the Day or Night bucket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var b bucketFlag
			if err := b.Set(args[1]); err != nil {
				return err
			}
			res, err := app.Profile.SetBucket(cmd.Context(), args[0], b.value)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMutation(res, fmt.Sprintf("Moved to %s:", b.value)))
			return nil
		},
	}
}

func newBucketClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear ID",
		Short: "Remove a movie from its bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Profile.ClearBucket(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMutation(res, "Cleared bucket for"))
			return nil
		},
	}
}

func newBucketListCmd(app *App) *cobra.Command {
	var flags rankFlags
	var only bucketFlag

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show bucketed titles in ranked order",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := liteapp.NewRecommendRequest()
			req.BucketedOnly = true
			flags.apply(&req)

			resp, err := app.Recommend.Recommend(cmd.Context(), req)
			if err != nil {
				return err
			}
			if only.value.Valid() {
				kept := resp.Items[:0]
				for _, m := range resp.Items {
					if m.Bucket == only.value {
						kept = append(kept, m)
					}
				}
				resp.Items = kept
			}
			if len(resp.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No bucketed titles."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecommendations(resp, flags.explain))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().Var(&only, "only", "Only show one bucket")

	return cmd
}
