package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"moviweb/internal/domain"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) GetAll(ctx context.Context) ([]domain.Genre, error) {
	var genres []domain.Genre
	if tx := r.db.WithContext(ctx).Order("name ASC").Find(&genres); tx.Error != nil {
		return nil, tx.Error
	}
	return genres, nil
}

func (r *GenreRepository) GetByName(ctx context.Context, name string) (*domain.Genre, error) {
	var g domain.Genre
	tx := r.db.WithContext(ctx).Where("name = ?", strings.TrimSpace(name)).First(&g)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &g, nil
}

// FindOrCreate returns the genre with the given name, creating it if
// absent. Insert races against the unique index fall back to a
// re-select of the existing row.
func (r *GenreRepository) FindOrCreate(ctx context.Context, name string) (*domain.Genre, error) {
	name = strings.TrimSpace(name)

	g, err := r.GetByName(ctx, name)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := domain.Genre{Name: name}
	if tx := r.db.WithContext(ctx).Create(&created); tx.Error != nil {
		if IsUniqueViolation(tx.Error) {
			return r.GetByName(ctx, name)
		}
		return nil, tx.Error
	}
	return &created, nil
}
