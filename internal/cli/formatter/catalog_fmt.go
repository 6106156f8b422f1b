package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lite/internal/domain"
)

const listTitleWidth = 28

// FormatCatalogList renders every catalog item in catalog order.
func FormatCatalogList(items []domain.CatalogItem) string {
	if len(items) == 0 {
		return Dim("Catalog is empty.") + "\n"
	}
	rows := make([][]string, 0, len(items))
	for _, m := range items {
		rows = append(rows, []string{
			m.ID,
			Truncate(m.Title, listTitleWidth),
			strings.Join(m.Genres, ", "),
			fmt.Sprintf("%.1f", m.Rating),
			fmt.Sprintf("%.0f%%", m.Popularity),
		})
	}
	cols := []Column{
		{Title: "ID"},
		{Title: "TITLE"},
		{Title: "GENRES"},
		{Title: "IMDB", Right: true},
		{Title: "PEERS", Right: true},
	}
	return RenderTable(cols, rows)
}

// FormatCatalogItem renders the detail card for one title. The profile is
// optional and adds the user's own state for the item.
func FormatCatalogItem(m *domain.CatalogItem, p *domain.UserProfile) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(m.Title), Dim("#"+m.ID)))
	b.WriteString(fmt.Sprintf("%s  %s\n",
		Dim(strings.Join(m.Genres, " · ")),
		StyleYellow.Render(fmt.Sprintf("IMDb %.1f", m.Rating)),
	))
	b.WriteString(Dim(fmt.Sprintf("%.0f%% of peers watched", m.Popularity)) + "\n")

	if m.Summary != "" {
		b.WriteString("\n" + StyleFg.Render(m.Summary) + "\n")
	}
	if m.Director != "" {
		b.WriteString("\n" + Dim("Director: ") + StyleFg.Render(m.Director) + "\n")
	}
	if len(m.Cast) > 0 {
		b.WriteString(Dim("Cast:") + "\n")
		for _, c := range m.Cast {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleFg.Render(c.Actor), Dim("as "+c.Character)))
		}
	}
	if len(m.Keywords) > 0 {
		b.WriteString(Dim("Keywords: "+strings.Join(m.Keywords, ", ")) + "\n")
	}
	if m.TrailerURL != "" {
		b.WriteString(Dim("Trailer: ") + StyleBlue.Render(m.TrailerURL) + "\n")
	}
	if m.ExternalURL != "" {
		b.WriteString(Dim("More: ") + StyleBlue.Render(m.ExternalURL) + "\n")
	}

	if p != nil {
		var state []string
		if n := p.WatchCounts[m.ID]; n > 0 {
			state = append(state, StyleBlue.Render(fmt.Sprintf("%d× watched", n)))
		}
		if p.InWishlist(m.ID) {
			state = append(state, StyleRed.Render("♥ wishlisted"))
		}
		if badge := BucketBadge(p.BucketFor(m.ID)); badge != "" {
			state = append(state, badge)
		}
		if r, ok := p.Rating(m.ID); ok {
			state = append(state, StyleYellow.Render(fmt.Sprintf("you: %.1f", r)))
		}
		if len(state) > 0 {
			b.WriteString("\n" + strings.Join(state, "  ") + "\n")
		}
	}

	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}
