package catalog

import (
	"strconv"
	"strings"
	"unicode"

	"moviweb/internal/domain"
	"moviweb/internal/omdb"
)

const notAvailable = "N/A"

// draft holds entity-ready movie fields extracted from provider
// metadata, before the director and genres are resolved against the
// store.
type draft struct {
	Title        string
	DirectorName string
	Year         int
	Rating       float64
	Poster       string
	Plot         string
	ImdbID       string
	GenreNames   []string
}

// buildDraft normalizes raw provider metadata. Title and director are
// required; everything else degrades to a sensible fallback rather
// than failing ingestion.
func buildDraft(meta *omdb.Movie, defaultPoster string) (*draft, error) {
	title := strings.TrimSpace(meta.Title)
	director := strings.TrimSpace(meta.Director)
	if title == "" || director == "" || director == notAvailable {
		return nil, ErrIncompleteMetadata
	}

	return &draft{
		Title:        title,
		DirectorName: director,
		Year:         parseYear(meta.Year),
		Rating:       parseRating(meta.ImdbRating),
		Poster:       posterOrDefault(meta.Poster, defaultPoster),
		Plot:         meta.Plot,
		ImdbID:       meta.ImdbID,
		GenreNames:   SplitGenreNames(meta.Genre),
	}, nil
}

// parseRating converts the provider's numeric-string rating, defaulting
// to 0 when it is "N/A" or otherwise unparseable.
func parseRating(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseYear reads the leading digits of the provider's year field,
// which may be a plain year or a series range like "2010–2015".
func parseYear(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && unicode.IsDigit(rune(s[end])) {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return v
}

// posterOrDefault substitutes the static default poster when the
// provider has none or sends its "N/A" sentinel.
func posterOrDefault(poster, fallback string) string {
	poster = strings.TrimSpace(poster)
	if poster == "" || poster == notAvailable {
		return fallback
	}
	return poster
}

// SplitGenreNames turns a comma-separated genre string into a clean
// name list: trimmed, empty tokens dropped, duplicates removed,
// original order kept.
func SplitGenreNames(s string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, raw := range strings.Split(s, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// ownership stamps exactly one owner side from the actor; the other
// side may be pre-assigned from the form (an admin attributing a movie
// to one of their users, or vice versa).
func ownership(actor domain.Actor, assignedUserID, assignedAdminID *int64) (userID, adminID *int64) {
	if actor.IsAdmin() {
		return assignedUserID, &actor.ID
	}
	return &actor.ID, assignedAdminID
}
