package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/lite/internal/app"
	"github.com/alexanderramin/lite/internal/domain"
	"github.com/alexanderramin/lite/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []app.RankedMovie) []string {
	out := make([]string, len(items))
	for i, m := range items {
		out[i] = m.Item.ID
	}
	return out
}

func TestRecommend_EmptyProfile(t *testing.T) {
	f := newFixture(t)

	resp, err := f.recs.Recommend(context.Background(), app.NewRecommendRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"6", "2", "3", "1", "4", "5"}, ids(resp.Items))
	assert.Equal(t, 6, resp.TotalRanked)
	assert.Empty(t, resp.TopGenre)
	assert.Empty(t, resp.Warnings)
	for i, m := range resp.Items {
		assert.Equal(t, i+1, m.Rank)
		assert.Equal(t, domain.StatusDiscovery, m.Status)
	}
	assert.Contains(t, f.observer.names(), "recommend")
}

func TestRecommend_AutoContextFollowsClock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// FixedNow is 20:00.
	resp, err := f.recs.Recommend(ctx, app.NewRecommendRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.ContextNight, resp.Context)

	morning := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	req := app.NewRecommendRequest()
	req.Now = &morning
	resp, err = f.recs.Recommend(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.ContextDay, resp.Context)

	day := domain.ContextDay
	req = app.NewRecommendRequest()
	req.Context = &day
	resp, err = f.recs.Recommend(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, domain.ContextDay, resp.Context, "explicit context wins over the clock")
}

func TestRecommend_BucketMatchingContextRanksFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.profiles.SetBucket(ctx, "5", domain.BucketNight)
	require.NoError(t, err)

	resp, err := f.recs.Recommend(ctx, app.NewRecommendRequest())
	require.NoError(t, err)

	top := resp.Items[0]
	assert.Equal(t, "5", top.Item.ID)
	assert.Equal(t, domain.BucketNight, top.Bucket)
	assert.InDelta(t, 74.4+55, top.Score, 1e-9)
}

func TestRecommend_UnknownSeedWarns(t *testing.T) {
	f := newFixture(t)

	req := app.NewRecommendRequest()
	req.SeedID = "nope"
	resp, err := f.recs.Recommend(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "unknown seed")
	assert.Equal(t, []string{"6", "2", "3", "1", "4", "5"}, ids(resp.Items))
}

func TestRecommend_SeedRanksBySimilarity(t *testing.T) {
	f := newFixture(t)

	req := app.NewRecommendRequest()
	req.SeedID = "1" // Sci-Fi, Drama
	resp, err := f.recs.Recommend(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "1", resp.Items[0].Item.ID, "the seed keeps its quality score")
	byID := make(map[string]app.RankedMovie)
	for _, m := range resp.Items {
		byID[m.Item.ID] = m
	}
	assert.InDelta(t, 50.0, byID["3"].Score, 1e-9)
	assert.InDelta(t, 0.0, byID["2"].Score, 1e-9)
}

func TestRecommend_FiltersAndLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := app.NewRecommendRequest()
	req.Genre = "Sci-Fi"
	req.Limit = 2
	resp, err := f.recs.Recommend(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, ids(resp.Items))
	assert.Equal(t, 6, resp.TotalRanked)

	req = app.NewRecommendRequest()
	req.Search = "JOKER"
	resp, err = f.recs.Recommend(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(resp.Items))

	req = app.NewRecommendRequest()
	req.Genre = "Western"
	resp, err = f.recs.Recommend(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Len(t, resp.Warnings, 1)
}

func TestRecommend_Views(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.profiles.LogWatch(ctx, app.LogWatchRequest{ItemID: "4", DurationHours: 1})
		require.NoError(t, err)
	}
	_, err := f.profiles.LogWatch(ctx, app.LogWatchRequest{ItemID: "2", DurationHours: 1})
	require.NoError(t, err)
	_, err = f.profiles.ToggleWishlist(ctx, "5")
	require.NoError(t, err)
	_, err = f.profiles.SetBucket(ctx, "1", domain.BucketDay)
	require.NoError(t, err)
	_, err = f.profiles.SetPersonalRating(ctx, app.RateRequest{ItemID: "5", Rating: 6})
	require.NoError(t, err)

	req := app.NewRecommendRequest()
	req.HeavyRotationOnly = true
	resp, err := f.recs.Recommend(ctx, req)
	require.NoError(t, err)
	require.Equal(t, []string{"4"}, ids(resp.Items))
	assert.Equal(t, 3, resp.Items[0].WatchCount)
	assert.Equal(t, domain.StatusWatched, resp.Items[0].Status)

	req = app.NewRecommendRequest()
	req.BucketedOnly = true
	resp, err = f.recs.Recommend(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(resp.Items))

	req = app.NewRecommendRequest()
	req.WishlistOnly = true
	resp, err = f.recs.Recommend(ctx, req)
	require.NoError(t, err)
	require.Equal(t, []string{"5"}, ids(resp.Items))
	assert.True(t, resp.Items[0].Wishlisted)
	require.NotNil(t, resp.Items[0].Rating)
	assert.Equal(t, 6.0, *resp.Items[0].Rating)
}

func TestRecommend_NegativeLimit(t *testing.T) {
	f := newFixture(t)

	req := app.NewRecommendRequest()
	req.Limit = -1
	_, err := f.recs.Recommend(context.Background(), req)
	var verr *app.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "limit", verr.Field)
}

func TestViewingPolicy_Fixed(t *testing.T) {
	p := DefaultViewingPolicy()
	p.Fixed = domain.ContextDay
	assert.Equal(t, domain.ContextDay, p.Resolve(testutil.FixedNow))
}
