package favorite

import (
	"moviweb/internal/domain"
	"moviweb/internal/listing"
)

type MovieResponse struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Rating   float64  `json:"rating"`
	Poster   string   `json:"poster"`
	Director string   `json:"director,omitempty"`
	Genres   []string `json:"genres"`
}

func toMovieResponse(m *domain.Movie) MovieResponse {
	resp := MovieResponse{
		ID:     m.ID,
		Title:  m.Title,
		Year:   m.Year,
		Rating: m.Rating,
		Poster: m.Poster,
		Genres: make([]string, 0, len(m.Genres)),
	}
	if m.Director != nil {
		resp.Director = m.Director.Name
	}
	for _, g := range m.Genres {
		resp.Genres = append(resp.Genres, g.Name)
	}
	return resp
}

type ListResponse struct {
	Movies     []MovieResponse `json:"movies"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

func ToListResponse(page listing.Page) ListResponse {
	items := make([]MovieResponse, len(page.Items))
	for i := range page.Items {
		items[i] = toMovieResponse(&page.Items[i])
	}
	return ListResponse{
		Movies:     items,
		Total:      page.Total,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalPages: page.TotalPages,
	}
}
