package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/lite/internal/app"
	"github.com/alexanderramin/lite/internal/domain"
	"github.com/alexanderramin/lite/internal/ranking"
)

// ViewingPolicy decides the viewing context when a request does not name
// one. An empty Fixed means follow the clock.
type ViewingPolicy struct {
	Fixed       domain.ViewingContext
	DayStarts   int
	NightStarts int
}

func DefaultViewingPolicy() ViewingPolicy {
	return ViewingPolicy{DayStarts: 6, NightStarts: 18}
}

// Resolve returns the context in force at now.
func (v ViewingPolicy) Resolve(now time.Time) domain.ViewingContext {
	if v.Fixed != "" {
		return v.Fixed
	}
	return domain.ContextAt(now, v.DayStarts, v.NightStarts)
}

type recommendService struct {
	catalog  *domain.Catalog
	profiles ProfileStore
	params   ranking.Params
	viewing  ViewingPolicy
	now      func() time.Time
	observer UseCaseObserver
}

func NewRecommendService(
	cat *domain.Catalog,
	profiles ProfileStore,
	params ranking.Params,
	viewing ViewingPolicy,
	observers ...UseCaseObserver,
) app.RecommendUseCase {
	return &recommendService{
		catalog:  cat,
		profiles: profiles,
		params:   params,
		viewing:  viewing,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *recommendService) Recommend(ctx context.Context, req app.RecommendRequest) (resp *app.RecommendResponse, err error) {
	fields := map[string]any{"seed": req.SeedID, "genre": req.Genre}
	done := observe(ctx, s.observer, "recommend", fields)
	defer func() { done(err) }()

	if req.Limit < 0 {
		return nil, &app.ValidationError{Field: "limit", Message: "must be at least 0"}
	}

	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}
	viewing := s.viewing.Resolve(now)
	if req.Context != nil {
		viewing = *req.Context
	}

	profile, err := s.profiles.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	var warnings []string
	if req.SeedID != "" && !s.catalog.Has(req.SeedID) {
		warnings = append(warnings, fmt.Sprintf("unknown seed %q, ranking without one", req.SeedID))
	}
	if req.Genre != "" && req.Genre != domain.AllGenres && !s.hasGenre(req.Genre) {
		warnings = append(warnings, fmt.Sprintf("no movies in genre %q", req.Genre))
	}

	scored := ranking.Rank(s.catalog, profile, ranking.Options{
		SeedID:  req.SeedID,
		Context: viewing,
		Params:  s.params,
	})
	total := len(scored)

	scored = ranking.Filter(scored, ranking.Query{Genre: req.Genre, Search: req.Search})
	scored = s.applyViews(scored, profile, req)
	if req.Limit > 0 && len(scored) > req.Limit {
		scored = scored[:req.Limit]
	}
	fields["returned"] = len(scored)
	fields["context"] = string(viewing)

	return &app.RecommendResponse{
		GeneratedAt: now,
		Context:     viewing,
		SeedID:      req.SeedID,
		TopGenre:    profile.TopGenre(),
		TotalRanked: total,
		Items:       toRankedMovies(scored, profile),
		Warnings:    warnings,
	}, nil
}

func (s *recommendService) hasGenre(genre string) bool {
	for _, g := range s.catalog.Genres() {
		if g == genre {
			return true
		}
	}
	return false
}

// applyViews narrows to the heavy-rotation, bucket and wishlist views. The
// views combine with AND.
func (s *recommendService) applyViews(items []ranking.ScoredItem, p *domain.UserProfile, req app.RecommendRequest) []ranking.ScoredItem {
	if !req.HeavyRotationOnly && !req.BucketedOnly && !req.WishlistOnly {
		return items
	}
	out := make([]ranking.ScoredItem, 0, len(items))
	for _, it := range items {
		if req.HeavyRotationOnly && it.WatchCount < s.params.RepeatWatchThreshold {
			continue
		}
		if req.BucketedOnly && !it.Bucket.Valid() {
			continue
		}
		if req.WishlistOnly && !p.InWishlist(it.Item.ID) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func toRankedMovies(items []ranking.ScoredItem, p *domain.UserProfile) []app.RankedMovie {
	out := make([]app.RankedMovie, len(items))
	for i, it := range items {
		m := app.RankedMovie{
			Item:        *it.Item,
			Rank:        i + 1,
			Score:       it.Score,
			Probability: it.Probability,
			Status:      it.Status,
			Bucket:      it.Bucket,
			WatchCount:  it.WatchCount,
			Wishlisted:  p.InWishlist(it.Item.ID),
			Reasons:     it.Reasons,
		}
		if r, ok := p.Rating(it.Item.ID); ok {
			m.Rating = &r
		}
		out[i] = m
	}
	return out
}
