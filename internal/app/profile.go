package app

import (
	"time"

	"github.com/alexanderramin/lite/internal/domain"
)

type LogWatchRequest struct {
	ItemID        string     `validate:"required"`
	DurationHours float64    `validate:"gt=0"`
	At            *time.Time `validate:"-"`
}

type RateRequest struct {
	ItemID string  `validate:"required"`
	Rating float64 `validate:"gte=0,lte=10"`
}

// MutationResult reports the profile after a mutation. Applied is false when
// the mutation was a no-op, including when the item is not in the catalog.
type MutationResult struct {
	Applied bool
	ItemID  string
	Title   string
	Profile *domain.UserProfile
}

type ProfileSummary struct {
	TotalHours     float64
	WatchCount     int
	DistinctTitles int
	TopGenres      []domain.GenreHours
	WishlistCount  int
	DayBucket      []string
	NightBucket    []string
	RatedCount     int
	Weights        domain.EngineWeights
	LastWatched    *domain.WatchEntry
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
