package ranking

import (
	"sort"
)

// CanonicalSort orders by score, highest first. The sort is stable, so equal
// scores keep catalog order; there is no secondary key.
func CanonicalSort(items []ScoredItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
}
