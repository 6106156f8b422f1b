package app

import "github.com/alexanderramin/lite/internal/domain"

type RecommendationReasonCode string

const (
	ReasonQualityBase     RecommendationReasonCode = "QUALITY_BASE"
	ReasonSeedSimilarity  RecommendationReasonCode = "SEED_SIMILARITY"
	ReasonGenreEngagement RecommendationReasonCode = "GENRE_ENGAGEMENT"
	ReasonWishlist        RecommendationReasonCode = "WISHLIST"
	ReasonHeavyRotation   RecommendationReasonCode = "HEAVY_ROTATION"
	ReasonPersonalRating  RecommendationReasonCode = "PERSONAL_RATING"
	ReasonBucketed        RecommendationReasonCode = "BUCKETED"
	ReasonViewingContext  RecommendationReasonCode = "VIEWING_CONTEXT"
)

type RecommendationReason struct {
	Code        RecommendationReasonCode
	Message     string
	WeightDelta *float64
}

// RankedMovie is one catalog item annotated by the ranking engine.
type RankedMovie struct {
	Item        domain.CatalogItem
	Rank        int
	Score       float64
	Probability int
	Status      domain.ItemStatus
	Bucket      domain.Bucket
	WatchCount  int
	Wishlisted  bool
	Rating      *float64
	Reasons     []RecommendationReason
}
