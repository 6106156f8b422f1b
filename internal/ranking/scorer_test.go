package ranking

import (
	"testing"

	"github.com/alexanderramin/lite/internal/app"
	"github.com/alexanderramin/lite/internal/domain"
	"github.com/alexanderramin/lite/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreOf(t *testing.T, items []ScoredItem, id string) ScoredItem {
	t.Helper()
	for _, s := range items {
		if s.Item.ID == id {
			return s
		}
	}
	t.Fatalf("item %s not ranked", id)
	return ScoredItem{}
}

func hasReason(s ScoredItem, code app.RecommendationReasonCode) bool {
	for _, r := range s.Reasons {
		if r.Code == code {
			return true
		}
	}
	return false
}

func TestRank_EmptyProfile_QualityThenPopularity(t *testing.T) {
	cat := testutil.NewTestCatalog(t,
		testutil.NewTestItem("low", "Seven", testutil.WithRating(7.0), testutil.WithPopularity(90)),
		testutil.NewTestItem("high", "Nine", testutil.WithRating(9.0), testutil.WithPopularity(90)),
	)

	ranked := Rank(cat, testutil.NewTestProfile(), DefaultOptions())

	require.Len(t, ranked, 2)
	assert.Equal(t, "high", ranked[0].Item.ID, "9.0 must outrank 7.0 at equal popularity")
	assert.InDelta(t, 9.0*6+90*0.3, ranked[0].Score, 1e-9)
	assert.InDelta(t, 7.0*6+90*0.3, ranked[1].Score, 1e-9)
	assert.True(t, hasReason(ranked[0], app.ReasonQualityBase))
}

func TestRank_SeedGenreOverlap(t *testing.T) {
	cat := testutil.NewTestCatalog(t,
		testutil.NewTestItem("A", "Alpha", testutil.WithGenres("Sci-Fi", "Drama"), testutil.WithRating(8), testutil.WithPopularity(80)),
		testutil.NewTestItem("B", "Bravo", testutil.WithGenres("Sci-Fi", "Action")),
	)
	opts := DefaultOptions()
	opts.SeedID = "A"

	ranked := Rank(cat, testutil.NewTestProfile(), opts)

	b := scoreOf(t, ranked, "B")
	assert.InDelta(t, 50.0, b.Score, 1e-9)
	assert.True(t, hasReason(b, app.ReasonSeedSimilarity))

	a := scoreOf(t, ranked, "A")
	assert.InDelta(t, 8.0*6+80*0.3, a.Score, 1e-9, "the seed itself uses the no-seed formula")
	assert.True(t, hasReason(a, app.ReasonQualityBase))
}

func TestRank_SeedWithoutSharedGenreScoresZero(t *testing.T) {
	cat := testutil.NewTestCatalog(t,
		testutil.NewTestItem("A", "Alpha", testutil.WithGenres("Sci-Fi")),
		testutil.NewTestItem("B", "Bravo", testutil.WithGenres("Crime", "Drama")),
	)
	opts := DefaultOptions()
	opts.SeedID = "A"

	ranked := Rank(cat, testutil.NewTestProfile(), opts)
	assert.Zero(t, scoreOf(t, ranked, "B").Score)
}

func TestRank_UnknownSeedFallsBackToQuality(t *testing.T) {
	cat := testutil.NewTestCatalog(t,
		testutil.NewTestItem("A", "Alpha", testutil.WithRating(8), testutil.WithPopularity(50)),
	)
	opts := DefaultOptions()
	opts.SeedID = "nope"

	ranked := Rank(cat, testutil.NewTestProfile(), opts)
	assert.InDelta(t, 8.0*6+50*0.3, ranked[0].Score, 1e-9)
}

func TestGenreOverlap(t *testing.T) {
	assert.InDelta(t, 50.0, GenreOverlap([]string{"a", "b"}, []string{"a", "c"}), 1e-9)
	assert.InDelta(t, 100.0, GenreOverlap([]string{"a", "b"}, []string{"b", "a"}), 1e-9)
	assert.InDelta(t, 100.0/2, GenreOverlap([]string{"a"}, []string{"a", "b", "c", "d"}), 1e-9)
	assert.Zero(t, GenreOverlap(nil, []string{"a"}))
	assert.Zero(t, GenreOverlap([]string{"x"}, []string{"y"}))
}

func TestScoreItem_EngagementThreshold(t *testing.T) {
	item := testutil.NewTestItem("1", "One", testutil.WithGenres("Drama", "Crime"), testutil.WithRating(0), testutil.WithPopularity(0))

	atThreshold := testutil.NewTestProfile(testutil.WithEngagement("Drama", 2.0))
	s := ScoreItem(ScoringInput{Item: &item, Profile: atThreshold, Weights: atThreshold.EngineWeights, Params: DefaultParams()})
	assert.Zero(t, s.Score, "hours equal to the threshold contribute nothing")
	assert.False(t, hasReason(s, app.ReasonGenreEngagement))

	above := testutil.NewTestProfile(testutil.WithEngagement("Drama", 2.5), testutil.WithEngagement("Crime", 4))
	s = ScoreItem(ScoringInput{Item: &item, Profile: above, Weights: above.EngineWeights, Params: DefaultParams()})
	assert.InDelta(t, (2.5+4)*4.5, s.Score, 1e-9)
	assert.True(t, hasReason(s, app.ReasonGenreEngagement))
}

func TestScoreItem_WishlistMultipliesAccumulatedScoreOnly(t *testing.T) {
	item := testutil.NewTestItem("1", "One", testutil.WithGenres("Drama"), testutil.WithRating(9), testutil.WithPopularity(90))
	p := testutil.NewTestProfile(
		testutil.WithEngagement("Drama", 5),
		testutil.WithWishlist("1"),
		testutil.WithPersonalRating("1", 8),
	)

	s := ScoreItem(ScoringInput{Item: &item, Profile: p, Weights: p.EngineWeights, Params: DefaultParams()})

	base := 9.0*6 + 90*0.3
	engaged := base + 5*4.5
	want := engaged*1.5 + 8*12
	assert.InDelta(t, want, s.Score, 1e-9)
	assert.True(t, hasReason(s, app.ReasonWishlist))
}

func TestScoreItem_HeavyRotationBonusAtThree(t *testing.T) {
	item := testutil.NewTestItem("1", "One", testutil.WithRating(0), testutil.WithPopularity(0))

	two := testutil.NewTestProfile(testutil.WithWatches("1", 2))
	s := ScoreItem(ScoringInput{Item: &item, Profile: two, Weights: two.EngineWeights, Params: DefaultParams()})
	assert.Zero(t, s.Score)
	assert.Equal(t, 2, s.WatchCount)

	three := testutil.NewTestProfile(testutil.WithWatches("1", 3))
	s = ScoreItem(ScoringInput{Item: &item, Profile: three, Weights: three.EngineWeights, Params: DefaultParams()})
	assert.InDelta(t, 100.0, s.Score, 1e-9)
	assert.True(t, hasReason(s, app.ReasonHeavyRotation))
}

func TestScoreItem_BucketAndViewingContext(t *testing.T) {
	item := testutil.NewTestItem("1", "One", testutil.WithRating(0), testutil.WithPopularity(0))
	p := testutil.NewTestProfile(testutil.WithBucket("1", domain.BucketNight))

	day := ScoreItem(ScoringInput{Item: &item, Profile: p, Weights: p.EngineWeights, Params: DefaultParams(), Context: domain.ContextDay})
	assert.InDelta(t, 40.0, day.Score, 1e-9)
	assert.True(t, hasReason(day, app.ReasonBucketed))
	assert.Equal(t, domain.BucketNight, day.Bucket)

	night := ScoreItem(ScoringInput{Item: &item, Profile: p, Weights: p.EngineWeights, Params: DefaultParams(), Context: domain.ContextNight})
	assert.InDelta(t, 55.0, night.Score, 1e-9)
	assert.True(t, hasReason(night, app.ReasonViewingContext))
}

func TestProbability_ClampsAtBoundaries(t *testing.T) {
	params := DefaultParams()
	cases := []struct {
		score float64
		want  int
	}{
		{-50, 10},
		{0, 10},
		{14.9, 10},
		{15, 10},
		{16.5, 11},
		{75, 50},
		{148.4, 98},
		{148.5, 99},
		{150, 99},
		{1e6, 99},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Probability(tc.score, params), "score=%v", tc.score)
	}
}

func TestProbability_FullRangeVariant(t *testing.T) {
	params := DefaultParams()
	params.ProbabilityFloor = 0
	params.ProbabilityCeiling = 100
	params.ScoreScale = 600

	assert.Equal(t, 0, Probability(0, params))
	assert.Equal(t, 50, Probability(300, params))
	assert.Equal(t, 100, Probability(600, params))
	assert.Equal(t, 100, Probability(900, params))
}

func TestRank_ProbabilityAlwaysWithinBounds(t *testing.T) {
	cat := testutil.MovieCatalog(t)
	p := testutil.NewTestProfile(
		testutil.WithEngagement("Sci-Fi", 40),
		testutil.WithWishlist("1", "3"),
		testutil.WithWatches("3", 4),
		testutil.WithPersonalRating("3", 10),
		testutil.WithBucket("3", domain.BucketDay),
	)

	for _, s := range Rank(cat, p, DefaultOptions()) {
		assert.GreaterOrEqual(t, s.Probability, 10)
		assert.LessOrEqual(t, s.Probability, 99)
	}
}
