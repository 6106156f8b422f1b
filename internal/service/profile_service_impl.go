package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lite/internal/app"
	"github.com/alexanderramin/lite/internal/domain"
	"github.com/alexanderramin/lite/internal/repository"
	"github.com/google/uuid"
)

type profileService struct {
	catalog  *domain.Catalog
	store    ProfileStore
	now      func() time.Time
	newID    func() string
	observer UseCaseObserver
}

func NewProfileService(cat *domain.Catalog, store ProfileStore, observers ...UseCaseObserver) app.ProfileUseCase {
	return &profileService{
		catalog:  cat,
		store:    store,
		now:      time.Now,
		newID:    uuid.NewString,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) LogWatch(ctx context.Context, req app.LogWatchRequest) (*app.MutationResult, error) {
	if err := app.Validate(req); err != nil {
		return nil, err
	}
	at := s.now().UTC()
	if req.At != nil {
		at = *req.At
	}
	return s.mutate(ctx, "log-watch", req.ItemID, domain.LogWatch{
		ItemID:        req.ItemID,
		DurationHours: req.DurationHours,
		At:            at,
		EntryID:       s.newID(),
	})
}

func (s *profileService) ToggleWishlist(ctx context.Context, itemID string) (*app.MutationResult, error) {
	return s.mutate(ctx, "toggle-wishlist", itemID, domain.ToggleWishlist{ItemID: itemID})
}

func (s *profileService) SetBucket(ctx context.Context, itemID string, bucket domain.Bucket) (*app.MutationResult, error) {
	if !bucket.Valid() {
		return nil, &app.ValidationError{Field: "bucket", Message: "must be Day or Night"}
	}
	return s.mutate(ctx, "set-bucket", itemID, domain.SetBucket{ItemID: itemID, Bucket: bucket})
}

func (s *profileService) ClearBucket(ctx context.Context, itemID string) (*app.MutationResult, error) {
	return s.mutate(ctx, "clear-bucket", itemID, domain.ClearBucket{ItemID: itemID})
}

func (s *profileService) SetPersonalRating(ctx context.Context, req app.RateRequest) (*app.MutationResult, error) {
	if err := app.Validate(req); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "rate", req.ItemID, domain.SetPersonalRating{ItemID: req.ItemID, Rating: req.Rating})
}

func (s *profileService) UpdateWeights(ctx context.Context, patch domain.WeightsPatch) (res *app.MutationResult, err error) {
	done := observe(ctx, s.observer, "update-weights", nil)
	defer func() { done(err) }()

	if patch.Empty() {
		return nil, &app.ValidationError{Field: "weights", Message: "at least one weight is required"}
	}
	next, applied, err := s.store.Update(ctx, func(p *domain.UserProfile) (*domain.UserProfile, error) {
		merged := patch.Merge(p.EngineWeights)
		if err := app.Validate(merged); err != nil {
			return nil, err
		}
		out, ok := domain.Apply(p, s.catalog, domain.SetEngineWeights{Weights: merged})
		if !ok {
			return nil, repository.ErrNoChange
		}
		return out, nil
	})
	if err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			return nil, err
		}
		return nil, fmt.Errorf("updating weights: %w", err)
	}
	return &app.MutationResult{Applied: applied, Profile: next}, nil
}

func (s *profileService) ResetEngagement(ctx context.Context) (*app.MutationResult, error) {
	return s.mutate(ctx, "reset-engagement", "", domain.ResetEngagement{})
}

// mutate runs one reducer event through an atomic store update. Events the
// reducer ignores, such as unknown item ids, leave storage untouched and
// report Applied=false.
func (s *profileService) mutate(ctx context.Context, name, itemID string, ev domain.Event) (res *app.MutationResult, err error) {
	fields := map[string]any{"item_id": itemID}
	done := observe(ctx, s.observer, name, fields)
	defer func() { done(err) }()

	next, applied, err := s.store.Update(ctx, func(p *domain.UserProfile) (*domain.UserProfile, error) {
		out, ok := domain.Apply(p, s.catalog, ev)
		if !ok {
			return nil, repository.ErrNoChange
		}
		return out, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	fields["applied"] = applied

	res = &app.MutationResult{Applied: applied, ItemID: itemID, Profile: next}
	if item, ok := s.catalog.Lookup(itemID); ok {
		res.Title = item.Title
	}
	return res, nil
}

func (s *profileService) Profile(ctx context.Context) (p *domain.UserProfile, err error) {
	done := observe(ctx, s.observer, "profile-load", nil)
	defer func() { done(err) }()

	p, err = s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return p, nil
}

func (s *profileService) Summary(ctx context.Context) (sum *app.ProfileSummary, err error) {
	done := observe(ctx, s.observer, "profile-summary", nil)
	defer func() { done(err) }()

	p, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	sum = &app.ProfileSummary{
		TotalHours:     p.TotalHours,
		WatchCount:     len(p.WatchedHistory),
		DistinctTitles: len(domain.DeriveWatchCounts(p.WatchedHistory)),
		TopGenres:      p.TopGenres(),
		WishlistCount:  len(p.Wishlist),
		RatedCount:     len(p.PersonalRatings),
		Weights:        p.EngineWeights,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	for _, item := range s.catalog.Items() {
		switch p.BucketFor(item.ID) {
		case domain.BucketDay:
			sum.DayBucket = append(sum.DayBucket, item.Title)
		case domain.BucketNight:
			sum.NightBucket = append(sum.NightBucket, item.Title)
		}
	}
	if n := len(p.WatchedHistory); n > 0 {
		last := p.WatchedHistory[n-1]
		sum.LastWatched = &last
	}
	return sum, nil
}
