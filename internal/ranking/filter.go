package ranking

import (
	"strings"

	"github.com/alexanderramin/lite/internal/domain"
)

// Query narrows a ranked list. Genre and Search are combined with AND.
type Query struct {
	// Genre is matched exactly; "" and "All" disable the genre filter.
	Genre string
	// Search is a case-insensitive substring of the title, a genre or a keyword.
	Search string
}

// Filter keeps matching items in their ranked order.
func Filter(items []ScoredItem, q Query) []ScoredItem {
	genre := q.Genre
	if genre == domain.AllGenres {
		genre = ""
	}
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	if genre == "" && needle == "" {
		return items
	}

	out := make([]ScoredItem, 0, len(items))
	for _, s := range items {
		if genre != "" && !s.Item.HasGenre(genre) {
			continue
		}
		if needle != "" && !Matches(s.Item, needle) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Matches reports whether the lower-cased needle occurs in the title, any
// genre or any keyword of the item.
func Matches(item *domain.CatalogItem, needle string) bool {
	if strings.Contains(strings.ToLower(item.Title), needle) {
		return true
	}
	for _, g := range item.Genres {
		if strings.Contains(strings.ToLower(g), needle) {
			return true
		}
	}
	for _, k := range item.Keywords {
		if strings.Contains(strings.ToLower(k), needle) {
			return true
		}
	}
	return false
}
