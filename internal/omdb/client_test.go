package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchByTitle_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Heat", r.URL.Query().Get("t"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Write([]byte(`{
			"Title": "Heat",
			"Year": "1995",
			"Director": "Michael Mann",
			"Genre": "Action, Crime, Drama",
			"Plot": "A group of high-end professional thieves...",
			"Poster": "https://example.com/heat.jpg",
			"imdbRating": "8.3",
			"imdbID": "tt0113277",
			"Response": "True"
		}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL("test-key", srv.URL)

	m, err := client.FetchByTitle(context.Background(), "Heat")
	require.NoError(t, err)
	assert.Equal(t, "Heat", m.Title)
	assert.Equal(t, "Michael Mann", m.Director)
	assert.Equal(t, "tt0113277", m.ImdbID)
	assert.Equal(t, "8.3", m.ImdbRating)
}

func TestFetchByTitle_NoMatchIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	defer srv.Close()

	client := NewWithBaseURL("test-key", srv.URL)

	_, err := client.FetchByTitle(context.Background(), "definitely not a movie")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchByTitle_ServerErrorDegradesToNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewWithBaseURL("test-key", srv.URL)

	_, err := client.FetchByTitle(context.Background(), "Heat")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchByTitle_MalformedPayloadDegradesToNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	client := NewWithBaseURL("test-key", srv.URL)

	_, err := client.FetchByTitle(context.Background(), "Heat")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchByTitle_EmptyTitleShortCircuits(t *testing.T) {
	client := New("test-key")

	_, err := client.FetchByTitle(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrNotFound)
}
