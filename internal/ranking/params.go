package ranking

// Params holds the engine constants that are not user-tunable. User-tunable
// coefficients live on domain.EngineWeights.
type Params struct {
	PopularityWeight     float64
	EngagementThreshold  float64
	FavoriteThreshold    float64
	RepeatWatchThreshold int
	RepeatWatchBonus     float64
	BucketBonus          float64
	ContextBonus         float64

	ScoreScale         float64
	ProbabilityFloor   int
	ProbabilityCeiling int
}

func DefaultParams() Params {
	return Params{
		PopularityWeight:     0.3,
		EngagementThreshold:  2.0,
		FavoriteThreshold:    10.0,
		RepeatWatchThreshold: 3,
		RepeatWatchBonus:     100,
		BucketBonus:          40,
		ContextBonus:         15,
		ScoreScale:           150,
		ProbabilityFloor:     10,
		ProbabilityCeiling:   99,
	}
}
