package ranking

import (
	"github.com/alexanderramin/lite/internal/domain"
)

type Options struct {
	// SeedID names a reference title. Empty or unknown IDs rank without one.
	SeedID  string
	Context domain.ViewingContext
	Params  Params
}

// DefaultOptions ranks without a seed in the day context.
func DefaultOptions() Options {
	return Options{
		Context: domain.ContextDay,
		Params:  DefaultParams(),
	}
}

// Rank scores every catalog item against the profile and returns them
// ordered by score. It has no side effects and is deterministic for a given
// catalog, profile and options.
func Rank(cat *domain.Catalog, p *domain.UserProfile, opts Options) []ScoredItem {
	var seed *domain.CatalogItem
	if opts.SeedID != "" {
		seed, _ = cat.Lookup(opts.SeedID)
	}
	favorites := favoriteGenres(p, opts.Params.FavoriteThreshold)

	items := cat.Items()
	scored := make([]ScoredItem, 0, len(items))
	for i := range items {
		item := &items[i]
		s := ScoreItem(ScoringInput{
			Item:    item,
			Seed:    seed,
			Profile: p,
			Weights: p.EngineWeights,
			Params:  opts.Params,
			Context: opts.Context,
		})
		s.Status = classify(item, p, favorites)
		scored = append(scored, s)
	}

	CanonicalSort(scored)
	return scored
}
