package cli

import (
	"fmt"

	liteapp "github.com/alexanderramin/lite/internal/app"
	"github.com/alexanderramin/lite/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWishlistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage titles you want to watch",
	}
	cmd.AddCommand(newWishlistToggleCmd(app), newWishlistListCmd(app))
	return cmd
}

func newWishlistToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Add a movie to the wishlist, or remove it if present",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Profile.ToggleWishlist(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			action := "Removed from wishlist:"
			if res.Profile != nil && res.Profile.InWishlist(args[0]) {
				action = "Added to wishlist:"
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMutation(res, action))
			return nil
		},
	}
}

func newWishlistListCmd(app *App) *cobra.Command {
	var flags rankFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show wishlisted titles in ranked order",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := liteapp.NewRecommendRequest()
			req.WishlistOnly = true
			flags.apply(&req)

			resp, err := app.Recommend.Recommend(cmd.Context(), req)
			if err != nil {
				return err
			}
			if len(resp.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Your wishlist is empty."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecommendations(resp, flags.explain))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
