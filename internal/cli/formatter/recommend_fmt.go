package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lite/internal/app"
)

const matchBarWidth = 10

// FormatRecommendations renders a ranked list. With explain set, each item
// also lists the factors that contributed to its score.
func FormatRecommendations(resp *app.RecommendResponse, explain bool) string {
	var b strings.Builder

	b.WriteString(ContextLabel(resp.Context))
	if resp.TopGenre != "" {
		b.WriteString("  " + Dim("top genre: ") + StyleFg.Render(resp.TopGenre))
	}
	b.WriteString("\n\n")

	if len(resp.Items) == 0 {
		b.WriteString(Dim("Nothing matches. Try a different genre or search."))
		b.WriteString("\n")
	}

	for i, m := range resp.Items {
		num := fmt.Sprintf("%d.", m.Rank)
		titleLine := fmt.Sprintf("%s %s  %s  %s",
			Bold(num),
			StyleFg.Render(m.Item.Title),
			Dim(fmt.Sprintf("(%s)", m.Item.ID)),
			StatusBadge(m.Status),
		)
		if badge := BucketBadge(m.Bucket); badge != "" {
			titleLine += "  " + badge
		}
		if m.Wishlisted {
			titleLine += "  " + StyleRed.Render("♥")
		}
		b.WriteString(titleLine + "\n")

		meta := fmt.Sprintf("%s  %s  %s",
			RenderMatch(m.Probability, matchBarWidth),
			Dim(strings.Join(m.Item.Genres, " · ")),
			Dim(fmt.Sprintf("IMDb %.1f", m.Item.Rating)),
		)
		if m.WatchCount > 0 {
			meta += "  " + StyleBlue.Render(fmt.Sprintf("%d× watched", m.WatchCount))
		}
		if m.Rating != nil {
			meta += "  " + StyleYellow.Render(fmt.Sprintf("you: %.1f", *m.Rating))
		}
		b.WriteString("   " + meta + "\n")

		if explain {
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("score"), StyleFg.Render(fmt.Sprintf("%.1f", m.Score))))
			for _, r := range m.Reasons {
				b.WriteString(fmt.Sprintf("   %s %s%s\n", StyleYellow.Render("+"), Dim(r.Message), formatDelta(r.WeightDelta)))
			}
		}

		if i < len(resp.Items)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Showing %d of %d titles", len(resp.Items), resp.TotalRanked)))
	b.WriteString("\n")

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
		}
	}

	title := "Top Picks"
	if resp.SeedID != "" {
		title = "Because You Picked " + resp.SeedID
	}
	return RenderBox(title, b.String())
}

func formatDelta(d *float64) string {
	if d == nil {
		return ""
	}
	return Dim(fmt.Sprintf(" (%+.1f)", *d))
}
