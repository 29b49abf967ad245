package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"moviweb/internal/domain"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, a *domain.Admin) error {
	a.Email = strings.TrimSpace(strings.ToLower(a.Email))
	if tx := r.db.WithContext(ctx).Create(a); tx.Error != nil {
		if IsUniqueViolation(tx.Error) {
			return ErrDuplicate
		}
		return tx.Error
	}
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	var a domain.Admin
	if tx := r.db.WithContext(ctx).First(&a, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var a domain.Admin
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&a)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}
