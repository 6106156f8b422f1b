package domain

import "time"

// Event is a profile transition. Events are applied with Apply and never
// mutate the profile they are given.
type Event interface {
	apply(p *UserProfile, cat *Catalog) bool
}

// LogWatch records a completed viewing. DurationHours must already be
// validated as positive.
type LogWatch struct {
	ItemID        string
	DurationHours float64
	At            time.Time
	EntryID       string
}

// ToggleWishlist adds the item when absent and removes it when present.
type ToggleWishlist struct {
	ItemID string
}

// SetBucket assigns a Day or Night bucket, replacing any previous one.
type SetBucket struct {
	ItemID string
	Bucket Bucket
}

type ClearBucket struct {
	ItemID string
}

// SetPersonalRating overwrites any earlier rating for the item.
type SetPersonalRating struct {
	ItemID string
	Rating float64
}

type SetEngineWeights struct {
	Weights EngineWeights
}

// ResetEngagement zeroes per-genre engagement. History and counts are kept.
type ResetEngagement struct{}

// Apply returns the profile that results from ev and whether anything
// changed. Events that name an item missing from the catalog are no-ops and
// return the input profile unchanged.
func Apply(p *UserProfile, cat *Catalog, ev Event) (*UserProfile, bool) {
	next := p.Clone()
	if !ev.apply(next, cat) {
		return p, false
	}
	return next, true
}

func (e LogWatch) apply(p *UserProfile, cat *Catalog) bool {
	item, ok := cat.Lookup(e.ItemID)
	if !ok {
		return false
	}
	p.WatchedHistory = append(p.WatchedHistory, WatchEntry{
		ID:            e.EntryID,
		ItemID:        e.ItemID,
		WatchedAt:     e.At,
		DurationHours: e.DurationHours,
	})
	p.TotalHours += e.DurationHours
	for _, g := range item.Genres {
		p.GenreEngagement[g] += e.DurationHours
	}
	p.WatchCounts[e.ItemID]++
	return true
}

func (e ToggleWishlist) apply(p *UserProfile, cat *Catalog) bool {
	if !cat.Has(e.ItemID) {
		return false
	}
	for i, id := range p.Wishlist {
		if id == e.ItemID {
			p.Wishlist = append(p.Wishlist[:i], p.Wishlist[i+1:]...)
			return true
		}
	}
	p.Wishlist = append(p.Wishlist, e.ItemID)
	return true
}

func (e SetBucket) apply(p *UserProfile, cat *Catalog) bool {
	if !cat.Has(e.ItemID) || !e.Bucket.Valid() {
		return false
	}
	if p.TemporalPreferences[e.ItemID] == e.Bucket {
		return false
	}
	p.TemporalPreferences[e.ItemID] = e.Bucket
	return true
}

func (e ClearBucket) apply(p *UserProfile, cat *Catalog) bool {
	if _, ok := p.TemporalPreferences[e.ItemID]; !ok {
		return false
	}
	delete(p.TemporalPreferences, e.ItemID)
	return true
}

func (e SetPersonalRating) apply(p *UserProfile, cat *Catalog) bool {
	if !cat.Has(e.ItemID) {
		return false
	}
	p.PersonalRatings[e.ItemID] = e.Rating
	return true
}

func (e SetEngineWeights) apply(p *UserProfile, _ *Catalog) bool {
	if p.EngineWeights == e.Weights {
		return false
	}
	p.EngineWeights = e.Weights
	return true
}

func (ResetEngagement) apply(p *UserProfile, _ *Catalog) bool {
	if len(p.GenreEngagement) == 0 {
		return false
	}
	p.GenreEngagement = make(map[string]float64)
	return true
}
