package cli

import (
	"fmt"

	"github.com/alexanderramin/lite/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the movie catalog",
	}
	cmd.AddCommand(newCatalogListCmd(app), newCatalogShowCmd(app))
	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every movie in catalog order",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalogList(app.Catalog.Items()))
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show details for one movie",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, ok := app.Catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("movie %q not found", args[0])
			}
			p, err := app.Profile.Profile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCatalogItem(item, p))
			return nil
		},
	}
}
