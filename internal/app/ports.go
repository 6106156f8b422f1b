package app

import (
	"context"

	"github.com/alexanderramin/lite/internal/domain"
)

type RecommendUseCase interface {
	Recommend(ctx context.Context, req RecommendRequest) (*RecommendResponse, error)
}

type LogWatchUseCase interface {
	LogWatch(ctx context.Context, req LogWatchRequest) (*MutationResult, error)
}

type ProfileUseCase interface {
	LogWatchUseCase
	ToggleWishlist(ctx context.Context, itemID string) (*MutationResult, error)
	SetBucket(ctx context.Context, itemID string, bucket domain.Bucket) (*MutationResult, error)
	ClearBucket(ctx context.Context, itemID string) (*MutationResult, error)
	SetPersonalRating(ctx context.Context, req RateRequest) (*MutationResult, error)
	UpdateWeights(ctx context.Context, patch domain.WeightsPatch) (*MutationResult, error)
	ResetEngagement(ctx context.Context) (*MutationResult, error)
	Summary(ctx context.Context) (*ProfileSummary, error)
	Profile(ctx context.Context) (*domain.UserProfile, error)
}
