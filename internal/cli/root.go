package cli

import (
	"time"

	"github.com/alexanderramin/lite/internal/app"
	"github.com/alexanderramin/lite/internal/domain"
	"github.com/spf13/cobra"
)

// App holds the use cases and reference data used by CLI commands.
type App struct {
	Recommend app.RecommendUseCase
	Profile   app.ProfileUseCase
	Catalog   *domain.Catalog

	// IsInteractive reports whether stdin is a terminal. Prompts are only
	// shown when it returns true.
	IsInteractive func() bool
	// PromptHours asks for a watch duration. Defaults to a huh form.
	PromptHours func(title string) (float64, error)
	// Confirm asks a yes/no question. Defaults to a huh form.
	Confirm func(question string) (bool, error)

	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "lite" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lite",
		Short:         "Movie picks ranked by what you actually watch",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRecommendCmd(app),
		newRotationCmd(app),
		newWatchCmd(app),
		newWishlistCmd(app),
		newBucketCmd(app),
		newRateCmd(app),
		newProfileCmd(app),
		newCatalogCmd(app),
		newBrowseCmd(app),
	)

	return root
}
