package domain

// Float64FromPtrWithDefault returns the first non-nil *float64 value, or the fallback.
func Float64FromPtrWithDefault(fallback float64, ptrs ...*float64) float64 {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

// WeightsPatch holds optional overrides for EngineWeights. Nil fields keep
// the current value.
type WeightsPatch struct {
	GenreWeight        *float64
	WishlistMultiplier *float64
	ImdbWeight         *float64
	RatingWeight       *float64
}

// Merge applies the patch on top of w.
func (wp WeightsPatch) Merge(w EngineWeights) EngineWeights {
	return EngineWeights{
		GenreWeight:        Float64FromPtrWithDefault(w.GenreWeight, wp.GenreWeight),
		WishlistMultiplier: Float64FromPtrWithDefault(w.WishlistMultiplier, wp.WishlistMultiplier),
		ImdbWeight:         Float64FromPtrWithDefault(w.ImdbWeight, wp.ImdbWeight),
		RatingWeight:       Float64FromPtrWithDefault(w.RatingWeight, wp.RatingWeight),
	}
}

// Empty reports whether the patch changes nothing.
func (wp WeightsPatch) Empty() bool {
	return wp.GenreWeight == nil && wp.WishlistMultiplier == nil &&
		wp.ImdbWeight == nil && wp.RatingWeight == nil
}
