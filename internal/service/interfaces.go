package service

import (
	"context"

	"github.com/alexanderramin/lite/internal/domain"
)

// ProfileStore is the persistence the services depend on.
// repository.ProfileStore implements it.
type ProfileStore interface {
	Load(ctx context.Context) (*domain.UserProfile, error)
	Update(ctx context.Context, fn func(*domain.UserProfile) (*domain.UserProfile, error)) (*domain.UserProfile, bool, error)
}
