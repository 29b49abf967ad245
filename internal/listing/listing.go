// Package listing turns a raw scoped movie collection into a
// display-ready page: stable multi-key sort, deduplication by IMDb id,
// then a fixed-size page window.
package listing

import (
	"sort"
	"strings"

	"moviweb/internal/domain"
)

type SortKey string

const (
	SortByTitle    SortKey = "title"
	SortByDirector SortKey = "director"
	SortByYear     SortKey = "year"
	SortByRating   SortKey = "rating"
	SortByGenre    SortKey = "genre"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseSortKey maps a query parameter onto a sort key. Anything
// unrecognized silently falls back to title; bad input is never an
// error here.
func ParseSortKey(raw string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case SortByTitle, SortByDirector, SortByYear, SortByRating, SortByGenre:
		return SortKey(strings.ToLower(strings.TrimSpace(raw)))
	default:
		return SortByTitle
	}
}

func ParseDirection(raw string) Direction {
	if Direction(strings.ToLower(strings.TrimSpace(raw))) == Descending {
		return Descending
	}
	return Ascending
}

// Page is one display window over the deduplicated, sorted collection.
type Page struct {
	Items      []domain.Movie `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PerPage    int            `json:"per_page"`
	TotalPages int            `json:"total_pages"`
}

// Render sorts, deduplicates and pages the collection. The input order
// is preserved for ties (stable sort), which keeps dedup deterministic
// across runs.
func Render(movies []domain.Movie, key SortKey, dir Direction, page, perPage int) Page {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 5
	}

	sorted := sortMovies(movies, key, dir)
	deduped := DedupByImdbID(sorted)

	total := len(deduped)
	totalPages := total / perPage
	if total%perPage > 0 {
		totalPages++
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items:      deduped[start:end],
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

// DedupByImdbID keeps the first occurrence of each non-empty IMDb id,
// preserving order. Movies without an id never collide with each other.
func DedupByImdbID(movies []domain.Movie) []domain.Movie {
	seen := make(map[string]struct{}, len(movies))
	unique := make([]domain.Movie, 0, len(movies))

	for _, m := range movies {
		if m.ImdbID != "" {
			if _, dup := seen[m.ImdbID]; dup {
				continue
			}
			seen[m.ImdbID] = struct{}{}
		}
		unique = append(unique, m)
	}
	return unique
}

// sortMovies returns a stably sorted copy. Each sort key resolves to a
// typed accessor; director and genre read through the preloaded
// related entities rather than the movie row itself.
func sortMovies(movies []domain.Movie, key SortKey, dir Direction) []domain.Movie {
	out := make([]domain.Movie, len(movies))
	copy(out, movies)

	less := lessFunc(key)
	if dir == Descending {
		asc := less
		less = func(a, b *domain.Movie) bool { return asc(b, a) }
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(&out[i], &out[j])
	})
	return out
}

func lessFunc(key SortKey) func(a, b *domain.Movie) bool {
	switch key {
	case SortByDirector:
		return func(a, b *domain.Movie) bool {
			return strings.ToLower(directorName(a)) < strings.ToLower(directorName(b))
		}
	case SortByYear:
		return func(a, b *domain.Movie) bool { return a.Year < b.Year }
	case SortByRating:
		return func(a, b *domain.Movie) bool { return a.Rating < b.Rating }
	case SortByGenre:
		return func(a, b *domain.Movie) bool {
			return strings.ToLower(primaryGenre(a)) < strings.ToLower(primaryGenre(b))
		}
	default:
		return func(a, b *domain.Movie) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	}
}

func directorName(m *domain.Movie) string {
	if m.Director == nil {
		return ""
	}
	return m.Director.Name
}

// primaryGenre is the first associated genre name. Movies without
// genres sort before everything else.
func primaryGenre(m *domain.Movie) string {
	if len(m.Genres) == 0 {
		return ""
	}
	return m.Genres[0].Name
}
