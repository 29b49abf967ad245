package favorite

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"moviweb/internal/listing"
	"moviweb/internal/repository"
)

// Service manages a user's favorite movies. Favorites belong to users
// only; admins never hold favorites, so every operation takes a plain
// user id rather than an actor.
type Service struct {
	favorites *repository.FavoriteRepository
	movies    *repository.MovieRepository
}

func NewService(favorites *repository.FavoriteRepository, movies *repository.MovieRepository) *Service {
	return &Service{favorites: favorites, movies: movies}
}

// Add favorites a movie for the user. The movie must exist; favoriting
// it twice is rejected rather than silently ignored.
func (s *Service) Add(ctx context.Context, userID, movieID int64) error {
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		return err
	}

	if _, err := s.favorites.Add(ctx, userID, movieID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyFavorite
		}
		return err
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, userID, movieID int64) error {
	err := s.favorites.Remove(ctx, userID, movieID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFavorite
	}
	return err
}

// List pages the user's favorite movies through the same listing
// pipeline the catalog uses.
func (s *Service) List(ctx context.Context, userID int64, key listing.SortKey, dir listing.Direction, page, perPage int) (listing.Page, error) {
	movies, err := s.favorites.Movies(ctx, userID)
	if err != nil {
		return listing.Page{}, err
	}
	return listing.Render(movies, key, dir, page, perPage), nil
}

func (s *Service) IsFavorite(ctx context.Context, userID, movieID int64) (bool, error) {
	return s.favorites.Exists(ctx, userID, movieID)
}

func (s *Service) Count(ctx context.Context, userID int64) (int64, error) {
	return s.favorites.Count(ctx, userID)
}
