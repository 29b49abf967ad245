package admin

import (
	"moviweb/internal/domain"
	"moviweb/internal/repository"
)

type AddUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Gender   string `json:"gender,omitempty"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Gender   *string `json:"gender,omitempty"`
	Password *string `json:"password,omitempty"`
}

type UserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Gender  string `json:"gender,omitempty"`
	AdminID *int64 `json:"admin_id,omitempty"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Gender:  u.Gender,
		AdminID: u.AdminID,
	}
}

type UsersPage struct {
	Users   []UserResponse `json:"users"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

type UserWithMovies struct {
	UserResponse
	MoviesCount int64 `json:"movies_count"`
}

type UserReportPage struct {
	Users   []UserWithMovies `json:"users"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
}

func toUserReportPage(rows []repository.UserWithMovieCount, total int64, page, perPage int) UserReportPage {
	users := make([]UserWithMovies, len(rows))
	for i, row := range rows {
		users[i] = UserWithMovies{
			UserResponse: toUserResponse(&row.User),
			MoviesCount:  row.MoviesCount,
		}
	}
	return UserReportPage{Users: users, Total: total, Page: page, PerPage: perPage}
}

type Dashboard struct {
	MyUsers     int64          `json:"my_users"`
	TotalUsers  int64          `json:"total_users"`
	MyMovies    int64          `json:"my_movies"`
	TotalMovies int64          `json:"total_movies"`
	Users       UserReportPage `json:"users"`
	Latest      []LatestMovie  `json:"latest_movies"`
}

type LatestMovie struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Rating float64 `json:"rating"`
	Poster string  `json:"poster"`
}

func toLatestMovies(movies []domain.Movie) []LatestMovie {
	out := make([]LatestMovie, len(movies))
	for i, m := range movies {
		out[i] = LatestMovie{
			ID:     m.ID,
			Title:  m.Title,
			Year:   m.Year,
			Rating: m.Rating,
			Poster: m.Poster,
		}
	}
	return out
}
