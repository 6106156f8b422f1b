package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/lite/internal/domain"
	"github.com/alexanderramin/lite/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type browseDriver struct {
	*teatest.Driver
	app *App
}

func newBrowseDriver(t *testing.T) *browseDriver {
	t.Helper()
	app := testApp(t)
	d := teatest.New(t, newBrowseModel(context.Background(), app), teatest.WithSize(100, 40))
	d.DrainInit()
	return &browseDriver{Driver: d, app: app}
}

func (d *browseDriver) model() browseModel {
	return d.Model.(browseModel)
}

func (d *browseDriver) titles() []string {
	m := d.model()
	require.NotNil(d.T, m.resp)
	out := make([]string, len(m.resp.Items))
	for i, it := range m.resp.Items {
		out[i] = it.Item.Title
	}
	return out
}

func (d *browseDriver) profile() *domain.UserProfile {
	p, err := d.app.Profile.Profile(context.Background())
	require.NoError(d.T, err)
	return p
}

func TestBrowse_LoadsRankedListOnInit(t *testing.T) {
	d := newBrowseDriver(t)

	assert.True(t, d.Contains("genre: All"))
	assert.True(t, d.Contains("NIGHT MODE"))
	assert.Equal(t, "The Godfather", d.titles()[0])
	assert.Len(t, d.titles(), 6)
	assert.True(t, d.Contains("▸"))
}

func TestBrowse_CursorStaysInBounds(t *testing.T) {
	d := newBrowseDriver(t)

	d.PressUp()
	assert.Equal(t, 0, d.model().cursor)

	for i := 0; i < 10; i++ {
		d.PressKey('j')
	}
	assert.Equal(t, 5, d.model().cursor)

	d.PressKey('k')
	assert.Equal(t, 4, d.model().cursor)
}

func TestBrowse_GenreCycling(t *testing.T) {
	d := newBrowseDriver(t)

	d.PressTab()
	assert.True(t, d.Contains("genre: Action"))
	assert.ElementsMatch(t, []string{"The Dark Knight", "Inception"}, d.titles())

	d.PressShiftTab()
	d.PressShiftTab()
	assert.True(t, d.Contains("genre: Thriller"))
	assert.Equal(t, []string{"Parasite"}, d.titles())
}

func TestBrowse_LiveSearch(t *testing.T) {
	d := newBrowseDriver(t)

	d.PressKey('/')
	require.True(t, d.model().searching)
	d.Type("dune")

	assert.Equal(t, []string{"Dune: Part Two"}, d.titles())

	d.PressBackspace()
	d.PressBackspace()
	d.PressBackspace()
	d.PressBackspace()
	assert.Len(t, d.titles(), 6)

	d.PressEsc()
	assert.False(t, d.model().searching)
	assert.False(t, d.Quitting, "esc leaves search before it quits")
}

func TestBrowse_SearchKeysDoNotTriggerActions(t *testing.T) {
	d := newBrowseDriver(t)

	d.PressKey('/')
	d.Type("wq")

	assert.False(t, d.Quitting)
	assert.Empty(t, d.profile().Wishlist)
}

func TestBrowse_WishlistToggle(t *testing.T) {
	d := newBrowseDriver(t)

	d.PressDown()
	d.PressKey('w')

	assert.Equal(t, []string{"2"}, d.profile().Wishlist)
	assert.True(t, d.Contains("The Dark Knight added to wishlist"))

	// The wishlist multiplier lifts it to the top.
	d.PressUp()
	assert.Equal(t, "The Dark Knight", d.titles()[0])
	d.PressKey('w')
	assert.Empty(t, d.profile().Wishlist)
}

func TestBrowse_BucketKeysToggle(t *testing.T) {
	d := newBrowseDriver(t)
	first := d.model().resp.Items[0].Item.ID

	d.PressKey('d')
	assert.Equal(t, domain.BucketDay, d.profile().BucketFor(first))
	assert.True(t, d.Contains("☀ Day"))

	d.PressKey('n')
	assert.Equal(t, domain.BucketNight, d.profile().BucketFor(first))

	d.PressKey('n')
	assert.Equal(t, domain.BucketNone, d.profile().BucketFor(first))
}

func TestBrowse_EnterSeedsRanking(t *testing.T) {
	d := newBrowseDriver(t)

	d.PressEnter()
	assert.Equal(t, "6", d.model().seed)
	assert.True(t, d.Contains("like: The Godfather"))
	assert.Equal(t, "6", d.model().resp.SeedID)

	// The seed keeps its own quality score and stays on top, so a second
	// enter clears it.
	d.PressEnter()
	assert.Empty(t, d.model().seed)
	assert.False(t, d.Contains("like:"))
}

func TestBrowse_Quit(t *testing.T) {
	d := newBrowseDriver(t)

	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}
