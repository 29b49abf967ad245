// Package omdb wraps the OMDb API for fetching movie metadata by title.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound covers every way a lookup can fail to produce data:
// unknown title, non-200 response, malformed payload or a transport
// error. Callers treat all of them as "no match", never as a fault.
var ErrNotFound = errors.New("omdb: movie not found")

const defaultBaseURL = "http://www.omdbapi.com/"

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// Movie is the subset of the OMDb payload the catalog consumes. All
// fields arrive as strings; Poster and imdbRating may carry the "N/A"
// sentinel.
type Movie struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Director   string `json:"Director"`
	Genre      string `json:"Genre"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`

	Response string `json:"Response"`
	Error    string `json:"Error"`
}

func New(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewWithBaseURL exists for tests pointing at an httptest server.
func NewWithBaseURL(apiKey, baseURL string) *Client {
	c := New(apiKey)
	c.baseURL = baseURL
	return c
}

// FetchByTitle looks a movie up by its exact title. Any failure mode
// degrades to ErrNotFound so callers never see a raw transport fault.
func (c *Client) FetchByTitle(ctx context.Context, title string) (*Movie, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrNotFound
	}

	values := url.Values{}
	values.Set("apikey", c.apiKey)
	values.Set("t", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, ErrNotFound
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrNotFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrNotFound
	}

	var m Movie
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, ErrNotFound
	}

	// OMDb reports misses with a 200 and Response:"False".
	if !strings.EqualFold(m.Response, "True") {
		return nil, ErrNotFound
	}

	return &m, nil
}
