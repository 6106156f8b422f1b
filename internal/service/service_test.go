package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/lite/internal/domain"
	"github.com/alexanderramin/lite/internal/ranking"
	"github.com/alexanderramin/lite/internal/repository"
	"github.com/alexanderramin/lite/internal/testutil"
	"github.com/stretchr/testify/require"
)

// recordingObserver collects use-case events for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.events))
	for i, e := range o.events {
		out[i] = e.Name
	}
	return out
}

type fixture struct {
	catalog  *domain.Catalog
	store    *repository.ProfileStore
	profiles *profileService
	recs     *recommendService
	observer *recordingObserver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat := testutil.MovieCatalog(t)
	store := repository.NewProfileStore(repository.NewSQLiteKVStore(testutil.NewTestDB(t)))
	obs := &recordingObserver{}

	profiles := NewProfileService(cat, store, obs).(*profileService)
	profiles.now = func() time.Time { return testutil.FixedNow }

	recs := NewRecommendService(cat, store, ranking.DefaultParams(), DefaultViewingPolicy(), obs).(*recommendService)
	recs.now = func() time.Time { return testutil.FixedNow }

	return &fixture{catalog: cat, store: store, profiles: profiles, recs: recs, observer: obs}
}

func (f *fixture) load(t *testing.T) *domain.UserProfile {
	t.Helper()
	p, err := f.store.Load(context.Background())
	require.NoError(t, err)
	return p
}
