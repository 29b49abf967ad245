package catalog

import (
	"moviweb/internal/domain"
	"moviweb/internal/listing"
)

type AddMovieRequest struct {
	Title string `json:"title"`
	// An admin may pre-assign the movie to one of their users; a user
	// may optionally attribute it to their managing admin.
	UserID  *int64 `json:"user_id,omitempty"`
	AdminID *int64 `json:"admin_id,omitempty"`
}

type UpdateMovieRequest struct {
	Title    *string  `json:"title,omitempty"`
	Director *string  `json:"director,omitempty"`
	Year     *int     `json:"year,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	// Comma-separated genre names; nil leaves the associations alone.
	Genres *string `json:"genres,omitempty"`
}

// ListQuery carries the listing controls parsed from query parameters.
type ListQuery struct {
	Page    int
	PerPage int
	Sort    listing.SortKey
	Order   listing.Direction
}

func (q ListQuery) render(movies []domain.Movie) listing.Page {
	return listing.Render(movies, q.Sort, q.Order, q.Page, q.PerPage)
}

type MovieResponse struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Rating   float64  `json:"rating"`
	Poster   string   `json:"poster"`
	Plot     string   `json:"plot,omitempty"`
	ImdbID   string   `json:"imdb_id,omitempty"`
	Director string   `json:"director,omitempty"`
	Genres   []string `json:"genres"`
	UserID   *int64   `json:"user_id,omitempty"`
	AdminID  *int64   `json:"admin_id,omitempty"`
}

func ToMovieResponse(m *domain.Movie) MovieResponse {
	resp := MovieResponse{
		ID:      m.ID,
		Title:   m.Title,
		Year:    m.Year,
		Rating:  m.Rating,
		Poster:  m.Poster,
		Plot:    m.Plot,
		ImdbID:  m.ImdbID,
		UserID:  m.UserID,
		AdminID: m.AdminID,
		Genres:  make([]string, 0, len(m.Genres)),
	}
	if m.Director != nil {
		resp.Director = m.Director.Name
	}
	for _, g := range m.Genres {
		resp.Genres = append(resp.Genres, g.Name)
	}
	return resp
}

type MovieListResponse struct {
	Movies     []MovieResponse `json:"movies"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

func ToMovieListResponse(page listing.Page) MovieListResponse {
	items := make([]MovieResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToMovieResponse(&page.Items[i])
	}
	return MovieListResponse{
		Movies:     items,
		Total:      page.Total,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalPages: page.TotalPages,
	}
}
