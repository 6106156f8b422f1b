package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextAt(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2025, 1, 1, h, 30, 0, 0, time.UTC) }

	assert.Equal(t, ContextNight, ContextAt(at(5), 6, 18))
	assert.Equal(t, ContextDay, ContextAt(at(6), 6, 18))
	assert.Equal(t, ContextDay, ContextAt(at(17), 6, 18))
	assert.Equal(t, ContextNight, ContextAt(at(18), 6, 18))
	assert.Equal(t, ContextNight, ContextAt(at(23), 6, 18))
}

func TestParseViewingContext(t *testing.T) {
	c, err := ParseViewingContext("NIGHT")
	require.NoError(t, err)
	assert.Equal(t, ContextNight, c)
	assert.Equal(t, BucketNight, c.Bucket())

	_, err = ParseViewingContext("noon")
	assert.Error(t, err)
}
