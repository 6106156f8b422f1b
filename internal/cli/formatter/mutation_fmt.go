package formatter

import (
	"fmt"

	"github.com/alexanderramin/lite/internal/app"
)

// FormatMutation renders the one-line confirmation for a profile change.
// action is the past-tense verb phrase, e.g. "Logged 2h of".
func FormatMutation(res *app.MutationResult, action string) string {
	if !res.Applied {
		target := res.ItemID
		if res.Title != "" {
			target = res.Title
		}
		if target == "" {
			return Dim("Nothing to change.") + "\n"
		}
		return Dim(fmt.Sprintf("No change for %s.", target)) + "\n"
	}
	if res.Title == "" {
		return StyleGreen.Render("✔ ") + StyleFg.Render(action) + "\n"
	}
	return fmt.Sprintf("%s%s %s\n", StyleGreen.Render("✔ "), StyleFg.Render(action), Bold(res.Title))
}
