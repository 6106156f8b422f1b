package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/lite/internal/domain"
	"github.com/google/uuid"
)

// FixedNow is the reference clock used by fixtures.
var FixedNow = time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC)

// NewTestCatalog builds a catalog from the given items, failing the test on
// duplicate IDs.
func NewTestCatalog(t testing.TB, items ...domain.CatalogItem) *domain.Catalog {
	t.Helper()
	cat, err := domain.NewCatalog(items)
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return cat
}

// Item options
type ItemOption func(*domain.CatalogItem)

func WithGenres(genres ...string) ItemOption {
	return func(m *domain.CatalogItem) {
		m.Genres = genres
	}
}

func WithRating(r float64) ItemOption {
	return func(m *domain.CatalogItem) {
		m.Rating = r
	}
}

func WithPopularity(p float64) ItemOption {
	return func(m *domain.CatalogItem) {
		m.Popularity = p
	}
}

func WithKeywords(k ...string) ItemOption {
	return func(m *domain.CatalogItem) {
		m.Keywords = k
	}
}

func NewTestItem(id, title string, opts ...ItemOption) domain.CatalogItem {
	m := domain.CatalogItem{
		ID:         id,
		Title:      title,
		Genres:     []string{"Drama"},
		Rating:     7.0,
		Popularity: 50,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// MovieCatalog is the six-title reference catalog shipped with the app.
func MovieCatalog(t testing.TB) *domain.Catalog {
	t.Helper()
	return NewTestCatalog(t,
		NewTestItem("1", "Interstellar", WithGenres("Sci-Fi", "Drama"), WithRating(8.7), WithPopularity(92), WithKeywords("space", "time-travel")),
		NewTestItem("2", "The Dark Knight", WithGenres("Action", "Crime"), WithRating(9.0), WithPopularity(98), WithKeywords("hero", "joker")),
		NewTestItem("3", "Inception", WithGenres("Sci-Fi", "Action"), WithRating(8.8), WithPopularity(95), WithKeywords("dreams", "heist")),
		NewTestItem("4", "Parasite", WithGenres("Drama", "Thriller"), WithRating(8.5), WithPopularity(88), WithKeywords("class", "social")),
		NewTestItem("5", "Dune: Part Two", WithGenres("Sci-Fi", "Adventure"), WithRating(8.6), WithPopularity(76), WithKeywords("desert", "prophecy")),
		NewTestItem("6", "The Godfather", WithGenres("Crime", "Drama"), WithRating(9.2), WithPopularity(99), WithKeywords("crime", "family")),
	)
}

// Profile options
type ProfileOption func(*domain.UserProfile)

func WithEngagement(genre string, hours float64) ProfileOption {
	return func(p *domain.UserProfile) {
		p.GenreEngagement[genre] = hours
	}
}

func WithWishlist(ids ...string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Wishlist = append(p.Wishlist, ids...)
	}
}

// WithWatches appends n history entries for the item and updates counts.
// Hours and engagement are left untouched.
func WithWatches(id string, n int) ProfileOption {
	return func(p *domain.UserProfile) {
		for i := 0; i < n; i++ {
			p.WatchedHistory = append(p.WatchedHistory, domain.WatchEntry{
				ID:            uuid.New().String(),
				ItemID:        id,
				WatchedAt:     FixedNow.Add(time.Duration(i) * time.Hour),
				DurationHours: 2,
			})
		}
		p.WatchCounts[id] += n
	}
}

func WithBucket(id string, b domain.Bucket) ProfileOption {
	return func(p *domain.UserProfile) {
		p.TemporalPreferences[id] = b
	}
}

func WithPersonalRating(id string, r float64) ProfileOption {
	return func(p *domain.UserProfile) {
		p.PersonalRatings[id] = r
	}
}

func WithWeights(w domain.EngineWeights) ProfileOption {
	return func(p *domain.UserProfile) {
		p.EngineWeights = w
	}
}

func NewTestProfile(opts ...ProfileOption) *domain.UserProfile {
	p := domain.NewUserProfile(FixedNow)
	for _, opt := range opts {
		opt(p)
	}
	return p
}
