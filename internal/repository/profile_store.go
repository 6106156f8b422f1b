package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lite/internal/domain"
	"github.com/alexanderramin/lite/internal/logging"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	// ProfileKey holds the current profile record.
	ProfileKey = "lite_user_profile.v2"
	// LegacyProfileKey is read, never written, when ProfileKey is absent.
	LegacyProfileKey = "lite_user_profile"
)

// ProfileStore persists the single user profile as a JSON snapshot in a
// KVStore.
type ProfileStore struct {
	kv  KVStore
	now func() time.Time
	log zerolog.Logger
}

type ProfileStoreOption func(*ProfileStore)

func WithClock(now func() time.Time) ProfileStoreOption {
	return func(s *ProfileStore) { s.now = now }
}

func WithLogger(l zerolog.Logger) ProfileStoreOption {
	return func(s *ProfileStore) { s.log = l }
}

func NewProfileStore(kv KVStore, opts ...ProfileStoreOption) *ProfileStore {
	s := &ProfileStore{
		kv:  kv,
		now: time.Now,
		log: logging.Component("profile_store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the stored profile, or a default one when nothing usable is
// stored. Only backend failures are returned as errors.
func (s *ProfileStore) Load(ctx context.Context) (*domain.UserProfile, error) {
	return s.load(ctx, s.kv)
}

// Save writes the full snapshot under ProfileKey.
func (s *ProfileStore) Save(ctx context.Context, p *domain.UserProfile) error {
	data, err := encodeProfile(p)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, ProfileKey, data); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// Update loads the profile, passes it to fn and stores the returned value,
// all inside one backend transaction. fn must not mutate its argument. When
// fn returns ErrNoChange nothing is written and Update reports applied=false
// with the loaded profile.
func (s *ProfileStore) Update(ctx context.Context, fn func(*domain.UserProfile) (*domain.UserProfile, error)) (*domain.UserProfile, bool, error) {
	var (
		result  *domain.UserProfile
		applied bool
	)
	err := s.kv.WithinTx(ctx, func(ctx context.Context, tx KVTx) error {
		current, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if errors.Is(err, ErrNoChange) {
			result = current
			return nil
		}
		if err != nil {
			return err
		}

		next.SchemaVersion = domain.ProfileSchemaVersion
		next.UpdatedAt = s.now()
		data, err := encodeProfile(next)
		if err != nil {
			return err
		}
		if err := tx.Set(ctx, ProfileKey, data); err != nil {
			return fmt.Errorf("saving profile: %w", err)
		}
		result, applied = next, true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, applied, nil
}

func (s *ProfileStore) load(ctx context.Context, tx KVTx) (*domain.UserProfile, error) {
	now := s.now()

	raw, err := tx.Get(ctx, ProfileKey)
	switch {
	case err == nil:
		return s.decode(raw, ProfileKey, now), nil
	case !errors.Is(err, ErrNotFound):
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	raw, err = tx.Get(ctx, LegacyProfileKey)
	if errors.Is(err, ErrNotFound) {
		return domain.NewUserProfile(now), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading legacy profile: %w", err)
	}
	p := s.decode(raw, LegacyProfileKey, now)
	s.log.Info().
		Int("history", len(p.WatchedHistory)).
		Msg("migrated legacy profile")
	return p, nil
}

func (s *ProfileStore) decode(raw []byte, key string, now time.Time) *domain.UserProfile {
	p, err := MigrateLegacy(raw, now)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("stored profile is malformed, starting from defaults")
		return domain.NewUserProfile(now)
	}
	return p
}

func encodeProfile(p *domain.UserProfile) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	return data, nil
}
