package domain

import (
	"fmt"
	"strings"
	"time"
)

type Bucket string

const (
	BucketNone  Bucket = ""
	BucketDay   Bucket = "Day"
	BucketNight Bucket = "Night"
)

// ParseBucket accepts "day"/"night" in any case.
func ParseBucket(s string) (Bucket, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day":
		return BucketDay, nil
	case "night":
		return BucketNight, nil
	default:
		return BucketNone, fmt.Errorf("bucket %q must be day or night", s)
	}
}

func (b Bucket) Valid() bool {
	return b == BucketDay || b == BucketNight
}

// ItemStatus groups ranked items for display. Evaluated in priority order:
// watched, then favorite, then discovery.
type ItemStatus string

const (
	StatusWatched   ItemStatus = "watched"
	StatusFavorite  ItemStatus = "favorite"
	StatusDiscovery ItemStatus = "discovery"
)

// ViewingContext is the active time-of-day theme. It matches the bucket of
// the same name.
type ViewingContext string

const (
	ContextDay   ViewingContext = "day"
	ContextNight ViewingContext = "night"
)

// Bucket returns the bucket that is relevant in this context.
func (c ViewingContext) Bucket() Bucket {
	switch c {
	case ContextDay:
		return BucketDay
	case ContextNight:
		return BucketNight
	default:
		return BucketNone
	}
}

// ContextAt picks the viewing context for a wall-clock time. Hours in
// [dayStarts, nightStarts) are day; everything else is night.
func ContextAt(t time.Time, dayStarts, nightStarts int) ViewingContext {
	h := t.Hour()
	if h >= dayStarts && h < nightStarts {
		return ContextDay
	}
	return ContextNight
}

// ParseViewingContext accepts "day"/"night" in any case.
func ParseViewingContext(s string) (ViewingContext, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day":
		return ContextDay, nil
	case "night":
		return ContextNight, nil
	default:
		return "", fmt.Errorf("viewing context %q must be day or night", s)
	}
}

// AllGenres is the pseudo-genre that disables genre filtering.
const AllGenres = "All"
