package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviweb/internal/omdb"
)

const testDefaultPoster = "/static/images/default_movie_poster.jpg"

func TestBuildDraft_RatingFallsBackToZero(t *testing.T) {
	meta := &omdb.Movie{
		Title:      "Obscure Film",
		Director:   "Somebody",
		ImdbRating: "N/A",
	}

	d, err := buildDraft(meta, testDefaultPoster)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.Rating)
}

func TestBuildDraft_ParsesNumericRating(t *testing.T) {
	meta := &omdb.Movie{
		Title:      "Heat",
		Director:   "Michael Mann",
		ImdbRating: "8.3",
	}

	d, err := buildDraft(meta, testDefaultPoster)
	require.NoError(t, err)
	assert.Equal(t, 8.3, d.Rating)
}

func TestBuildDraft_PosterSentinelUsesDefault(t *testing.T) {
	for _, poster := range []string{"N/A", "", "   "} {
		meta := &omdb.Movie{Title: "T", Director: "D", Poster: poster}

		d, err := buildDraft(meta, testDefaultPoster)
		require.NoError(t, err)
		assert.Equal(t, testDefaultPoster, d.Poster)
	}
}

func TestBuildDraft_KeepsRealPoster(t *testing.T) {
	meta := &omdb.Movie{Title: "T", Director: "D", Poster: "https://example.com/p.jpg"}

	d, err := buildDraft(meta, testDefaultPoster)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/p.jpg", d.Poster)
}

func TestBuildDraft_MissingRequiredFields(t *testing.T) {
	cases := []*omdb.Movie{
		{Director: "D"},
		{Title: "T"},
		{Title: "T", Director: "N/A"},
	}
	for _, meta := range cases {
		_, err := buildDraft(meta, testDefaultPoster)
		assert.ErrorIs(t, err, ErrIncompleteMetadata)
	}
}

func TestParseYear(t *testing.T) {
	assert.Equal(t, 1995, parseYear("1995"))
	assert.Equal(t, 2010, parseYear("2010–2015"))
	assert.Equal(t, 2019, parseYear("2019–"))
	assert.Equal(t, 0, parseYear("N/A"))
	assert.Equal(t, 0, parseYear(""))
}

func TestSplitGenreNames(t *testing.T) {
	assert.Equal(t,
		[]string{"Action", "Crime", "Drama"},
		SplitGenreNames("Action, Crime, Drama"))
	assert.Equal(t,
		[]string{"Action", "Drama"},
		SplitGenreNames(" Action ,, Drama , Action "))
	assert.Nil(t, SplitGenreNames(""))
	assert.Nil(t, SplitGenreNames(" , ,"))
}
