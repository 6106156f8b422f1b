package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SixMoviesInOrder(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	require.Equal(t, 6, cat.Len())
	titles := make([]string, 0, cat.Len())
	for _, m := range cat.Items() {
		titles = append(titles, m.Title)
	}
	assert.Equal(t, []string{"Interstellar", "The Dark Knight", "Inception", "Parasite", "Dune: Part Two", "The Godfather"}, titles)
	assert.Equal(t, []string{"Action", "Adventure", "Crime", "Drama", "Sci-Fi", "Thriller"}, cat.Genres())

	godfather, ok := cat.Lookup("6")
	require.True(t, ok)
	assert.Equal(t, 9.2, godfather.Rating)
	assert.Equal(t, 99.0, godfather.Popularity)
	assert.Equal(t, "Francis Ford Coppola", godfather.Director)
	require.Len(t, godfather.Cast, 2)
	assert.Equal(t, "Marlon Brando", godfather.Cast[0].Actor)
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, cat.Len())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
movies:
  - id: a
    title: Alpha
    genres: [Drama]
    imdb_rating: 7.1
    watched_percentage: 40
`), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	m, ok := cat.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, 7.1, m.Rating)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"empty", "movies: []", ErrEmpty},
		{"duplicate", "movies:\n  - {id: a, title: A}\n  - {id: a, title: B}\n", ErrDuplicateID},
		{"missing title", "movies:\n  - {id: a}\n", nil},
		{"rating out of range", "movies:\n  - {id: a, title: A, imdb_rating: 11}\n", nil},
		{"bad url", "movies:\n  - {id: a, title: A, trailer_url: not-a-url}\n", nil},
		{"not yaml", "movies: [", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}
