package repository

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lite/internal/domain"
	"github.com/goccy/go-json"
)

// LegacyWatchHours is the duration assumed for history entries written
// before durations were recorded.
const LegacyWatchHours = 2.5

var errNotObject = errors.New("profile record is not a JSON object")

// profileRecord accepts both the current record and the legacy one, where
// engagement was called hoursPerGenre and history held bare item ids.
type profileRecord struct {
	SchemaVersion       int                `json:"schemaVersion"`
	TotalHours          float64            `json:"totalHours"`
	GenreEngagement     map[string]float64 `json:"genreEngagement"`
	HoursPerGenre       map[string]float64 `json:"hoursPerGenre"`
	Wishlist            []string           `json:"wishlist"`
	WatchedHistory      []json.RawMessage  `json:"watchedHistory"`
	WatchCounts         map[string]int     `json:"watchCounts"`
	TemporalPreferences map[string]string  `json:"temporalPreferences"`
	PersonalRatings     map[string]float64 `json:"personalRatings"`
	EngineWeights       *weightsRecord     `json:"engineWeights"`
	CreatedAt           *time.Time         `json:"createdAt"`
	UpdatedAt           *time.Time         `json:"updatedAt"`
}

type weightsRecord struct {
	GenreWeight        *float64 `json:"genreWeight"`
	WishlistMultiplier *float64 `json:"wishlistMultiplier"`
	ImdbWeight         *float64 `json:"imdbWeight"`
	RatingWeight       *float64 `json:"ratingWeight"`
}

// MigrateLegacy decodes a stored profile of any known shape into the current
// model. now stands in for missing timestamps. It is pure; a non-nil error
// means the record is malformed.
func MigrateLegacy(raw []byte, now time.Time) (*domain.UserProfile, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errNotObject
	}
	var rec profileRecord
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}

	created := now
	if rec.CreatedAt != nil && !rec.CreatedAt.IsZero() {
		created = *rec.CreatedAt
	}
	p := domain.NewUserProfile(created)
	p.UpdatedAt = created
	if rec.UpdatedAt != nil && !rec.UpdatedAt.IsZero() {
		p.UpdatedAt = *rec.UpdatedAt
	}

	if rec.TotalHours > 0 {
		p.TotalHours = rec.TotalHours
	}

	engagement := rec.GenreEngagement
	if engagement == nil {
		engagement = rec.HoursPerGenre
	}
	for g, h := range engagement {
		if h > 0 {
			p.GenreEngagement[g] = h
		}
	}

	seen := make(map[string]bool, len(rec.Wishlist))
	for _, id := range rec.Wishlist {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		p.Wishlist = append(p.Wishlist, id)
	}

	for i, entry := range rec.WatchedHistory {
		e, err := decodeWatchEntry(entry, created)
		if err != nil {
			return nil, fmt.Errorf("history entry %d: %w", i, err)
		}
		if e.ItemID == "" {
			continue
		}
		p.WatchedHistory = append(p.WatchedHistory, e)
	}

	if rec.WatchCounts != nil {
		for id, n := range rec.WatchCounts {
			if n > 0 {
				p.WatchCounts[id] = n
			}
		}
	} else {
		p.WatchCounts = domain.DeriveWatchCounts(p.WatchedHistory)
	}

	for id, name := range rec.TemporalPreferences {
		if b, err := domain.ParseBucket(name); err == nil {
			p.TemporalPreferences[id] = b
		}
	}

	for id, r := range rec.PersonalRatings {
		p.PersonalRatings[id] = r
	}

	p.EngineWeights = mergeWeights(rec.EngineWeights)
	return p, nil
}

func decodeWatchEntry(raw json.RawMessage, at time.Time) (domain.WatchEntry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return domain.WatchEntry{}, err
		}
		return domain.WatchEntry{ItemID: id, WatchedAt: at, DurationHours: LegacyWatchHours}, nil
	}
	var e domain.WatchEntry
	if err := json.Unmarshal(trimmed, &e); err != nil {
		return domain.WatchEntry{}, err
	}
	if e.WatchedAt.IsZero() {
		e.WatchedAt = at
	}
	if e.DurationHours <= 0 {
		e.DurationHours = LegacyWatchHours
	}
	return e, nil
}

func mergeWeights(w *weightsRecord) domain.EngineWeights {
	if w == nil {
		return domain.DefaultEngineWeights()
	}
	return domain.WeightsPatch{
		GenreWeight:        w.GenreWeight,
		WishlistMultiplier: w.WishlistMultiplier,
		ImdbWeight:         w.ImdbWeight,
		RatingWeight:       w.RatingWeight,
	}.Merge(domain.DefaultEngineWeights())
}
