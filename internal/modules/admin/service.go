package admin

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"moviweb/internal/domain"
	"moviweb/internal/listing"
	"moviweb/internal/repository"
)

const dashboardLatest = 5

type Service struct {
	users     *repository.UserRepository
	movies    *repository.MovieRepository
	favorites *repository.FavoriteRepository
}

func NewService(
	users *repository.UserRepository,
	movies *repository.MovieRepository,
	favorites *repository.FavoriteRepository,
) *Service {
	return &Service{users: users, movies: movies, favorites: favorites}
}

/* ---------- DASHBOARD ---------- */

// Dashboard aggregates the admin's own counts next to the global ones,
// plus a first page of managed users with their movie counts and the
// newest movies in the admin's scope.
func (s *Service) Dashboard(ctx context.Context, adminID int64, page, perPage int) (*Dashboard, error) {
	actor := domain.Actor{ID: adminID, Role: domain.RoleAdmin}

	myUsers, err := s.users.CountScoped(ctx, repository.UsersManagedBy(adminID))
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.CountScoped(ctx)
	if err != nil {
		return nil, err
	}
	myMovies, err := s.movies.CountScoped(ctx, repository.MoviesOwnedBy(actor))
	if err != nil {
		return nil, err
	}
	totalMovies, err := s.movies.CountScoped(ctx)
	if err != nil {
		return nil, err
	}

	rows, total, err := s.users.ListWithMovieCounts(ctx, adminID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	latest, err := s.movies.Latest(ctx, repository.MoviesOwnedBy(actor), dashboardLatest)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		MyUsers:     myUsers,
		TotalUsers:  totalUsers,
		MyMovies:    myMovies,
		TotalMovies: totalMovies,
		Users:       toUserReportPage(rows, total, page, perPage),
		Latest:      toLatestMovies(listing.DedupByImdbID(latest)),
	}, nil
}

/* ---------- USER MANAGEMENT ---------- */

// ListUsers pages either the admin's own users or everyone.
func (s *Service) ListUsers(ctx context.Context, adminID int64, mine bool, page, perPage int) (UsersPage, error) {
	scope := repository.Unscoped()
	if mine {
		scope = repository.UsersManagedBy(adminID)
	}

	users, total, err := s.users.List(ctx, scope, perPage, (page-1)*perPage)
	if err != nil {
		return UsersPage{}, err
	}

	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return UsersPage{Users: out, Total: total, Page: page, PerPage: perPage}, nil
}

// AddUser creates a user account managed by the acting admin.
func (s *Service) AddUser(ctx context.Context, adminID int64, req AddUserRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Gender:       req.Gender,
		AdminID:      &adminID,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser edits a managed user. Admins may only touch users they
// manage.
func (s *Service) UpdateUser(ctx context.Context, adminID, userID int64, req UpdateUserRequest) (*domain.User, error) {
	user, err := s.managedUser(ctx, adminID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a managed user together with everything hanging
// off them: their favorites, then each movie they added (which clears
// that movie's genre associations and any favorites pointing at it).
func (s *Service) DeleteUser(ctx context.Context, adminID, userID int64) error {
	user, err := s.managedUser(ctx, adminID, userID)
	if err != nil {
		return err
	}

	movies, err := s.movies.GetScoped(ctx, repository.MoviesAddedByUser(user.ID))
	if err != nil {
		return err
	}
	for i := range movies {
		if err := s.movies.Delete(ctx, &movies[i]); err != nil {
			return err
		}
	}

	ids, err := s.favorites.MovieIDs(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, movieID := range ids {
		if err := s.favorites.Remove(ctx, user.ID, movieID); err != nil {
			return err
		}
	}

	return s.users.Delete(ctx, user.ID)
}

/* ---------- REPORTS ---------- */

// UsersReport pages the admin's users with their movie counts.
func (s *Service) UsersReport(ctx context.Context, adminID int64, page, perPage int) (UserReportPage, error) {
	rows, total, err := s.users.ListWithMovieCounts(ctx, adminID, perPage, (page-1)*perPage)
	if err != nil {
		return UserReportPage{}, err
	}
	return toUserReportPage(rows, total, page, perPage), nil
}

// UserDetailReport returns one user's profile with their movies in
// title order.
func (s *Service) UserDetailReport(ctx context.Context, userID int64, page, perPage int) (UserResponse, listing.Page, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return UserResponse{}, listing.Page{}, err
	}

	movies, err := s.movies.GetScoped(ctx, repository.MoviesAddedByUser(userID))
	if err != nil {
		return UserResponse{}, listing.Page{}, err
	}

	rendered := listing.Render(movies, listing.SortByTitle, listing.Ascending, page, perPage)
	return toUserResponse(user), rendered, nil
}

func (s *Service) managedUser(ctx context.Context, adminID, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.AdminID == nil || *user.AdminID != adminID {
		return nil, ErrNotManagedUser
	}
	return user, nil
}
