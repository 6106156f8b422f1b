package ranking

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/lite/internal/app"
	"github.com/alexanderramin/lite/internal/domain"
)

type ScoringInput struct {
	Item    *domain.CatalogItem
	Seed    *domain.CatalogItem // nil when ranking without a reference title
	Profile *domain.UserProfile
	Weights domain.EngineWeights
	Params  Params
	Context domain.ViewingContext
}

type ScoredItem struct {
	Item        *domain.CatalogItem
	Score       float64
	Probability int
	Status      domain.ItemStatus
	Bucket      domain.Bucket
	WatchCount  int
	Reasons     []app.RecommendationReason
}

// factor returns the amount to add to the running score. Factors run in
// order; multiplicative factors express themselves as a delta on the score
// accumulated so far.
type factor func(in ScoringInput, score float64) (float64, *app.RecommendationReason)

var factors = []factor{
	scoreBase,
	scoreGenreEngagement,
	scoreWishlist,
	scoreHeavyRotation,
	scorePersonalRating,
	scoreBucket,
}

func ScoreItem(input ScoringInput) ScoredItem {
	result := ScoredItem{
		Item:       input.Item,
		Bucket:     input.Profile.BucketFor(input.Item.ID),
		WatchCount: input.Profile.WatchCounts[input.Item.ID],
	}

	var score float64
	for _, f := range factors {
		delta, reason := f(input, score)
		score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}

	result.Score = score
	result.Probability = Probability(score, input.Params)
	return result
}

func scoreBase(input ScoringInput, _ float64) (float64, *app.RecommendationReason) {
	if input.Seed != nil && input.Seed.ID != input.Item.ID {
		delta := GenreOverlap(input.Item.Genres, input.Seed.Genres)
		return delta, &app.RecommendationReason{
			Code:        app.ReasonSeedSimilarity,
			Message:     fmt.Sprintf("Shares genres with %s", input.Seed.Title),
			WeightDelta: &delta,
		}
	}
	delta := input.Item.Rating*input.Weights.ImdbWeight + input.Item.Popularity*input.Params.PopularityWeight
	return delta, &app.RecommendationReason{
		Code:        app.ReasonQualityBase,
		Message:     fmt.Sprintf("Rated %.1f, watched by %.0f%% of peers", input.Item.Rating, input.Item.Popularity),
		WeightDelta: &delta,
	}
}

// GenreOverlap is the cosine overlap of two genre sets on a 0-100 scale.
func GenreOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inB := make(map[string]bool, len(b))
	for _, g := range b {
		inB[g] = true
	}
	seen := make(map[string]bool, len(a))
	var shared int
	for _, g := range a {
		if inB[g] && !seen[g] {
			shared++
		}
		seen[g] = true
	}
	return float64(shared) / math.Sqrt(float64(len(a)*len(b))) * 100
}

func scoreGenreEngagement(input ScoringInput, _ float64) (float64, *app.RecommendationReason) {
	var delta float64
	var hot []string
	for _, g := range input.Item.Genres {
		h := input.Profile.GenreEngagement[g]
		if h > input.Params.EngagementThreshold {
			delta += h * input.Weights.GenreWeight
			hot = append(hot, g)
		}
	}
	if len(hot) == 0 {
		return 0, nil
	}
	return delta, &app.RecommendationReason{
		Code:        app.ReasonGenreEngagement,
		Message:     "You spend time on " + strings.Join(hot, ", "),
		WeightDelta: &delta,
	}
}

func scoreWishlist(input ScoringInput, score float64) (float64, *app.RecommendationReason) {
	if !input.Profile.InWishlist(input.Item.ID) {
		return 0, nil
	}
	delta := score*input.Weights.WishlistMultiplier - score
	return delta, &app.RecommendationReason{
		Code:        app.ReasonWishlist,
		Message:     fmt.Sprintf("On your wishlist (x%.2g)", input.Weights.WishlistMultiplier),
		WeightDelta: &delta,
	}
}

func scoreHeavyRotation(input ScoringInput, _ float64) (float64, *app.RecommendationReason) {
	count := input.Profile.WatchCounts[input.Item.ID]
	if count < input.Params.RepeatWatchThreshold {
		return 0, nil
	}
	delta := input.Params.RepeatWatchBonus
	return delta, &app.RecommendationReason{
		Code:        app.ReasonHeavyRotation,
		Message:     fmt.Sprintf("Watched %d times", count),
		WeightDelta: &delta,
	}
}

func scorePersonalRating(input ScoringInput, _ float64) (float64, *app.RecommendationReason) {
	rating, ok := input.Profile.Rating(input.Item.ID)
	if !ok {
		return 0, nil
	}
	delta := rating * input.Weights.RatingWeight
	return delta, &app.RecommendationReason{
		Code:        app.ReasonPersonalRating,
		Message:     fmt.Sprintf("You rated it %.1f", rating),
		WeightDelta: &delta,
	}
}

func scoreBucket(input ScoringInput, _ float64) (float64, *app.RecommendationReason) {
	bucket := input.Profile.BucketFor(input.Item.ID)
	if !bucket.Valid() {
		return 0, nil
	}
	delta := input.Params.BucketBonus
	code := app.ReasonBucketed
	msg := fmt.Sprintf("In your %s bucket", bucket)
	if bucket == input.Context.Bucket() {
		delta += input.Params.ContextBonus
		code = app.ReasonViewingContext
		msg = fmt.Sprintf("In your %s bucket, and it is %s now", bucket, input.Context)
	}
	return delta, &app.RecommendationReason{
		Code:        code,
		Message:     msg,
		WeightDelta: &delta,
	}
}

// Probability maps a raw score to the displayed match percentage.
func Probability(score float64, params Params) int {
	scale := params.ScoreScale
	if scale <= 0 {
		scale = DefaultParams().ScoreScale
	}
	pct := int(math.Floor(score * 100 / scale))
	if pct < params.ProbabilityFloor {
		return params.ProbabilityFloor
	}
	if pct > params.ProbabilityCeiling {
		return params.ProbabilityCeiling
	}
	return pct
}

// classify evaluates watched before favorite before discovery.
func classify(item *domain.CatalogItem, p *domain.UserProfile, favorites map[string]bool) domain.ItemStatus {
	if p.HasWatched(item.ID) {
		return domain.StatusWatched
	}
	for _, g := range item.Genres {
		if favorites[g] {
			return domain.StatusFavorite
		}
	}
	return domain.StatusDiscovery
}

// favoriteGenres is the top-engagement genre plus every genre above the
// favorite threshold.
func favoriteGenres(p *domain.UserProfile, threshold float64) map[string]bool {
	fav := make(map[string]bool)
	if top := p.TopGenre(); top != "" {
		fav[top] = true
	}
	for g, h := range p.GenreEngagement {
		if h > threshold {
			fav[g] = true
		}
	}
	return fav
}
