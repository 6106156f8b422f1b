package repository

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/lite/internal/domain"
	"github.com/alexanderramin/lite/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfileStore(t *testing.T, kv KVStore) (*ProfileStore, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	store := NewProfileStore(kv,
		WithClock(func() time.Time { return testutil.FixedNow }),
		WithLogger(zerolog.New(&buf)),
	)
	return store, &buf
}

func TestProfileStore_LoadEmptyReturnsDefaults(t *testing.T) {
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			store, _ := newTestProfileStore(t, kv)

			p, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, domain.NewUserProfile(testutil.FixedNow), p)
		})
	}
}

func TestProfileStore_SaveThenLoad(t *testing.T) {
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			store, _ := newTestProfileStore(t, kv)
			ctx := context.Background()

			p := testutil.NewTestProfile(
				testutil.WithEngagement("Drama", 3),
				testutil.WithWishlist("4"),
				testutil.WithPersonalRating("4", 8),
			)
			require.NoError(t, store.Save(ctx, p))
			require.NoError(t, store.Save(ctx, p), "save is idempotent")

			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, p.GenreEngagement, got.GenreEngagement)
			assert.Equal(t, p.Wishlist, got.Wishlist)
			assert.Equal(t, p.PersonalRatings, got.PersonalRatings)
			assert.Equal(t, p.EngineWeights, got.EngineWeights)
		})
	}
}

func TestProfileStore_MalformedRecordFallsBackToDefaults(t *testing.T) {
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			store, logs := newTestProfileStore(t, kv)
			ctx := context.Background()
			require.NoError(t, kv.Set(ctx, ProfileKey, []byte(`{"wishlist": "oops"`)))

			p, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.NewUserProfile(testutil.FixedNow), p)
			assert.Contains(t, logs.String(), "malformed")
		})
	}
}

func TestProfileStore_LoadsLegacyKey(t *testing.T) {
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			store, _ := newTestProfileStore(t, kv)
			ctx := context.Background()
			require.NoError(t, kv.Set(ctx, LegacyProfileKey, []byte(`{"totalHours": 2, "hoursPerGenre": {"Action": 2}, "watchedHistory": ["2"], "watchCounts": {"2": 1}}`)))

			p, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2.0, p.GenreEngagement["Action"])
			require.Len(t, p.WatchedHistory, 1)
			assert.Equal(t, "2", p.WatchedHistory[0].ItemID)

			_, err = kv.Get(ctx, ProfileKey)
			assert.ErrorIs(t, err, ErrNotFound, "loading does not write")
		})
	}
}

func TestProfileStore_CurrentKeyWinsOverLegacy(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))
	store, _ := newTestProfileStore(t, kv)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, LegacyProfileKey, []byte(`{"wishlist": ["1"]}`)))
	require.NoError(t, kv.Set(ctx, ProfileKey, []byte(`{"wishlist": ["2"]}`)))

	p, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, p.Wishlist)
}

func TestProfileStore_UpdatePersists(t *testing.T) {
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			store, _ := newTestProfileStore(t, kv)
			ctx := context.Background()

			next, applied, err := store.Update(ctx, func(p *domain.UserProfile) (*domain.UserProfile, error) {
				c := p.Clone()
				c.Wishlist = append(c.Wishlist, "3")
				return c, nil
			})
			require.NoError(t, err)
			assert.True(t, applied)
			assert.Equal(t, []string{"3"}, next.Wishlist)
			assert.Equal(t, testutil.FixedNow, next.UpdatedAt)

			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"3"}, got.Wishlist)
		})
	}
}

func TestProfileStore_UpdateNoChangeSkipsWrite(t *testing.T) {
	kv := NewSQLiteKVStore(testutil.NewTestDB(t))
	store, _ := newTestProfileStore(t, kv)
	ctx := context.Background()

	p, applied, err := store.Update(ctx, func(*domain.UserProfile) (*domain.UserProfile, error) {
		return nil, ErrNoChange
	})
	require.NoError(t, err)
	assert.False(t, applied)
	assert.NotNil(t, p)

	_, err = kv.Get(ctx, ProfileKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileStore_UpdateErrorPropagates(t *testing.T) {
	store, _ := newTestProfileStore(t, NewBadgerKVStore(testutil.NewTestBadger(t)))
	boom := errors.New("boom")

	_, _, err := store.Update(context.Background(), func(*domain.UserProfile) (*domain.UserProfile, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestProfileStore_UpdateRollsBackFailedWrite(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	seed, _ := newTestProfileStore(t, NewSQLiteKVStore(database))
	require.NoError(t, seed.Save(ctx, testutil.NewTestProfile(testutil.WithWishlist("1"))))

	failing := NewSQLiteKVStoreWithUoW(database, &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 1,
		Err:    errors.New("disk full"),
	})
	store, _ := newTestProfileStore(t, failing)

	_, applied, err := store.Update(ctx, func(p *domain.UserProfile) (*domain.UserProfile, error) {
		c := p.Clone()
		c.Wishlist = nil
		return c, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.False(t, applied)

	got, err := seed.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, got.Wishlist)
}
