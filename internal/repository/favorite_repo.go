package repository

import (
	"context"

	"gorm.io/gorm"

	"moviweb/internal/domain"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add marks a movie as a favorite of the user. The unique index on
// (user_id, movie_id) backs up the Exists pre-check under concurrency.
func (r *FavoriteRepository) Add(ctx context.Context, userID, movieID int64) (*domain.Favorite, error) {
	exists, err := r.Exists(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicate
	}

	fav := &domain.Favorite{UserID: userID, MovieID: movieID}
	if tx := r.db.WithContext(ctx).Create(fav); tx.Error != nil {
		if IsUniqueViolation(tx.Error) {
			return nil, ErrDuplicate
		}
		return nil, tx.Error
	}
	return fav, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, movieID int64) error {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&domain.Favorite{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID, movieID int64) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

func (r *FavoriteRepository) Count(ctx context.Context, userID int64) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ?", userID).
		Count(&count)
	return count, tx.Error
}

// MovieIDs returns the ids of every movie the user has favorited.
// Feeds the set-subtraction behind "my movies excluding favorites".
func (r *FavoriteRepository) MovieIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	tx := r.db.WithContext(ctx).Model(&domain.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("movie_id", &ids)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ids, nil
}

// Movies loads the user's favorite movies with director and genres
// preloaded, ready for the listing engine.
func (r *FavoriteRepository) Movies(ctx context.Context, userID int64) ([]domain.Movie, error) {
	var movies []domain.Movie
	tx := r.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.movie_id = movies.id").
		Where("favorites.user_id = ?", userID).
		Preload("Director").
		Preload("Genres").
		Find(&movies)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return movies, nil
}
