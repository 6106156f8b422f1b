package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_LogWatchRejectsNonPositiveDuration(t *testing.T) {
	for _, d := range []float64{0, -1.5} {
		err := Validate(LogWatchRequest{ItemID: "1", DurationHours: d})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "duration_hours", verr.Field)
		assert.Equal(t, "must be greater than 0", verr.Message)
	}
}

func TestValidate_LogWatchAcceptsPositiveDuration(t *testing.T) {
	assert.NoError(t, Validate(LogWatchRequest{ItemID: "1", DurationHours: 0.25}))
}

func TestValidate_RateBounds(t *testing.T) {
	assert.NoError(t, Validate(RateRequest{ItemID: "1", Rating: 0}))
	assert.NoError(t, Validate(RateRequest{ItemID: "1", Rating: 10}))

	err := Validate(RateRequest{ItemID: "1", Rating: 10.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rating: must be at most 10")
}

func TestValidate_RequiredItemID(t *testing.T) {
	err := Validate(RateRequest{Rating: 5})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "item_id", verr.Field)
	assert.Equal(t, "is required", verr.Message)
}
