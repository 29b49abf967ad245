package repository

import (
	"context"

	"gorm.io/gorm"

	"moviweb/internal/domain"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) Create(ctx context.Context, m *domain.Movie) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	var m domain.Movie
	tx := r.db.WithContext(ctx).
		Preload("Director").
		Preload("Genres").
		First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &m, nil
}

func (r *MovieRepository) Update(ctx context.Context, m *domain.Movie) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// GetScoped loads every movie visible under the scope with director and
// genres preloaded; sorting and paging happen downstream in the listing
// engine, which needs the whole scoped set for deduplication.
func (r *MovieRepository) GetScoped(ctx context.Context, scopes ...Scope) ([]domain.Movie, error) {
	q := r.db.WithContext(ctx).
		Preload("Director").
		Preload("Genres")
	for _, s := range scopes {
		q = s(q)
	}

	var movies []domain.Movie
	if tx := q.Find(&movies); tx.Error != nil {
		return nil, tx.Error
	}
	return movies, nil
}

func (r *MovieRepository) CountScoped(ctx context.Context, scopes ...Scope) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Movie{})
	for _, s := range scopes {
		q = s(q)
	}

	var count int64
	if tx := q.Count(&count); tx.Error != nil {
		return 0, tx.Error
	}
	return count, nil
}

// TitleExists reports whether the owner scope already holds a movie
// with the given title. The admin/user scopes are checked separately,
// so the same title may exist once per role.
func (r *MovieRepository) TitleExists(ctx context.Context, title string, scope Scope) (bool, error) {
	q := scope(r.db.WithContext(ctx).Model(&domain.Movie{}).Where("title = ?", title))

	var count int64
	if tx := q.Count(&count); tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

// Latest returns the most recently added movies in the scope, newest
// first. Used for the dashboard strip, not for the paginated listings.
func (r *MovieRepository) Latest(ctx context.Context, scope Scope, limit int) ([]domain.Movie, error) {
	var movies []domain.Movie
	tx := scope(r.db.WithContext(ctx).Preload("Director").Preload("Genres")).
		Order("id DESC").
		Limit(limit).
		Find(&movies)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return movies, nil
}

func (r *MovieRepository) AppendGenre(ctx context.Context, m *domain.Movie, g *domain.Genre) error {
	return r.db.WithContext(ctx).Model(m).Association("Genres").Append(g)
}

// RemoveGenre detaches the association only; the genre row itself
// stays because other movies may reference it.
func (r *MovieRepository) RemoveGenre(ctx context.Context, m *domain.Movie, g *domain.Genre) error {
	return r.db.WithContext(ctx).Model(m).Association("Genres").Delete(g)
}

// Delete removes a movie together with its genre associations and any
// favorites pointing at it. The schema declares no cascades, so the
// dependent rows go first inside one transaction.
func (r *MovieRepository) Delete(ctx context.Context, m *domain.Movie) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(m).Association("Genres").Clear(); err != nil {
			return err
		}
		if err := tx.Where("movie_id = ?", m.ID).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
}
