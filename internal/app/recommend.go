package app

import (
	"time"

	"github.com/alexanderramin/lite/internal/domain"
)

type RecommendRequest struct {
	SeedID  string
	Genre   string
	Search  string
	Limit   int
	Context *domain.ViewingContext
	Now     *time.Time

	// Only items whose WatchCount reaches the heavy-rotation threshold.
	HeavyRotationOnly bool
	// Only items holding a Day or Night bucket.
	BucketedOnly bool
	// Only wishlisted items.
	WishlistOnly bool
}

func NewRecommendRequest() RecommendRequest {
	return RecommendRequest{Genre: domain.AllGenres}
}

type RecommendResponse struct {
	GeneratedAt time.Time
	Context     domain.ViewingContext
	SeedID      string
	TopGenre    string
	// TotalRanked counts every catalog item before filters and limit.
	TotalRanked int
	Items       []RankedMovie
	Warnings    []string
}
