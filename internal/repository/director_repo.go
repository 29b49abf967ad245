package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"moviweb/internal/domain"
)

type DirectorRepository struct {
	db *gorm.DB
}

func NewDirectorRepository(db *gorm.DB) *DirectorRepository {
	return &DirectorRepository{db: db}
}

func (r *DirectorRepository) GetByID(ctx context.Context, id int64) (*domain.Director, error) {
	var d domain.Director
	if tx := r.db.WithContext(ctx).First(&d, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &d, nil
}

func (r *DirectorRepository) GetByName(ctx context.Context, name string) (*domain.Director, error) {
	var d domain.Director
	tx := r.db.WithContext(ctx).Where("name = ?", strings.TrimSpace(name)).First(&d)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &d, nil
}

// FindOrCreate returns the director with the given name, inserting it
// first if missing. A concurrent insert losing the race against the
// unique index is resolved by re-selecting the winner's row.
func (r *DirectorRepository) FindOrCreate(ctx context.Context, name string) (*domain.Director, error) {
	name = strings.TrimSpace(name)

	d, err := r.GetByName(ctx, name)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := domain.Director{Name: name}
	if tx := r.db.WithContext(ctx).Create(&created); tx.Error != nil {
		if IsUniqueViolation(tx.Error) {
			return r.GetByName(ctx, name)
		}
		return nil, tx.Error
	}
	return &created, nil
}
