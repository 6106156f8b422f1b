package domain

import (
	"sort"
	"time"
)

// ProfileSchemaVersion is the record shape written by this version.
const ProfileSchemaVersion = 2

type EngineWeights struct {
	GenreWeight        float64 `json:"genreWeight" validate:"gte=0"`
	WishlistMultiplier float64 `json:"wishlistMultiplier" validate:"gte=1"`
	ImdbWeight         float64 `json:"imdbWeight" validate:"gte=0"`
	RatingWeight       float64 `json:"ratingWeight" validate:"gte=0"`
}

func DefaultEngineWeights() EngineWeights {
	return EngineWeights{
		GenreWeight:        4.5,
		WishlistMultiplier: 1.5,
		ImdbWeight:         6.0,
		RatingWeight:       12.0,
	}
}

type WatchEntry struct {
	ID            string    `json:"id,omitempty"`
	ItemID        string    `json:"itemId"`
	WatchedAt     time.Time `json:"timestamp"`
	DurationHours float64   `json:"durationHours"`
}

// UserProfile is the single durable preference record. It is treated as an
// immutable value: mutations go through Apply, which returns a modified clone.
type UserProfile struct {
	SchemaVersion       int                `json:"schemaVersion"`
	TotalHours          float64            `json:"totalHours"`
	GenreEngagement     map[string]float64 `json:"genreEngagement"`
	Wishlist            []string           `json:"wishlist"`
	WatchedHistory      []WatchEntry       `json:"watchedHistory"`
	WatchCounts         map[string]int     `json:"watchCounts"`
	TemporalPreferences map[string]Bucket  `json:"temporalPreferences"`
	PersonalRatings     map[string]float64 `json:"personalRatings"`
	EngineWeights       EngineWeights      `json:"engineWeights"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

// NewUserProfile returns the default profile used on first run.
func NewUserProfile(now time.Time) *UserProfile {
	return &UserProfile{
		SchemaVersion:       ProfileSchemaVersion,
		GenreEngagement:     make(map[string]float64),
		Wishlist:            []string{},
		WatchedHistory:      []WatchEntry{},
		WatchCounts:         make(map[string]int),
		TemporalPreferences: make(map[string]Bucket),
		PersonalRatings:     make(map[string]float64),
		EngineWeights:       DefaultEngineWeights(),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// Clone returns a deep copy. Nil maps in the receiver become empty maps.
func (p *UserProfile) Clone() *UserProfile {
	c := *p
	c.GenreEngagement = make(map[string]float64, len(p.GenreEngagement))
	for k, v := range p.GenreEngagement {
		c.GenreEngagement[k] = v
	}
	c.Wishlist = append([]string{}, p.Wishlist...)
	c.WatchedHistory = append([]WatchEntry{}, p.WatchedHistory...)
	c.WatchCounts = make(map[string]int, len(p.WatchCounts))
	for k, v := range p.WatchCounts {
		c.WatchCounts[k] = v
	}
	c.TemporalPreferences = make(map[string]Bucket, len(p.TemporalPreferences))
	for k, v := range p.TemporalPreferences {
		c.TemporalPreferences[k] = v
	}
	c.PersonalRatings = make(map[string]float64, len(p.PersonalRatings))
	for k, v := range p.PersonalRatings {
		c.PersonalRatings[k] = v
	}
	return &c
}

func (p *UserProfile) InWishlist(id string) bool {
	for _, w := range p.Wishlist {
		if w == id {
			return true
		}
	}
	return false
}

// HasWatched reports whether the item appears anywhere in the history.
func (p *UserProfile) HasWatched(id string) bool {
	for _, e := range p.WatchedHistory {
		if e.ItemID == id {
			return true
		}
	}
	return false
}

func (p *UserProfile) BucketFor(id string) Bucket {
	return p.TemporalPreferences[id]
}

func (p *UserProfile) Rating(id string) (float64, bool) {
	r, ok := p.PersonalRatings[id]
	return r, ok
}

// GenreHours is one genre with its accumulated engagement.
type GenreHours struct {
	Genre string
	Hours float64
}

// TopGenres returns genres with positive engagement, highest first, ties
// broken by name so the result is deterministic.
func (p *UserProfile) TopGenres() []GenreHours {
	out := make([]GenreHours, 0, len(p.GenreEngagement))
	for g, h := range p.GenreEngagement {
		if h > 0 {
			out = append(out, GenreHours{Genre: g, Hours: h})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hours != out[j].Hours {
			return out[i].Hours > out[j].Hours
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}

// TopGenre returns the most engaged genre, or "" when there is no engagement.
func (p *UserProfile) TopGenre() string {
	top := p.TopGenres()
	if len(top) == 0 {
		return ""
	}
	return top[0].Genre
}

// DeriveWatchCounts rebuilds per-item counts from the history.
func DeriveWatchCounts(history []WatchEntry) map[string]int {
	counts := make(map[string]int)
	for _, e := range history {
		counts[e.ItemID]++
	}
	return counts
}
