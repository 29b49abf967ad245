package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"moviweb/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	if tx := r.db.WithContext(ctx).Create(u); tx.Error != nil {
		if IsUniqueViolation(tx.Error) {
			return ErrDuplicate
		}
		return tx.Error
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if tx := r.db.WithContext(ctx).First(&u, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	if tx := r.db.WithContext(ctx).Save(u); tx.Error != nil {
		if IsUniqueViolation(tx.Error) {
			return ErrDuplicate
		}
		return tx.Error
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.User{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns a page of users under the scope plus the scoped total.
func (r *UserRepository) List(ctx context.Context, scope Scope, limit, offset int) ([]domain.User, int64, error) {
	var total int64
	if tx := scope(r.db.WithContext(ctx).Model(&domain.User{})).Count(&total); tx.Error != nil {
		return nil, 0, tx.Error
	}

	var users []domain.User
	tx := scope(r.db.WithContext(ctx)).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}
	return users, total, nil
}

func (r *UserRepository) CountScoped(ctx context.Context, scopes ...Scope) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{})
	for _, s := range scopes {
		q = s(q)
	}

	var count int64
	if tx := q.Count(&count); tx.Error != nil {
		return 0, tx.Error
	}
	return count, nil
}

// UserWithMovieCount pairs a user with the number of movies attributed
// to them, for the admin dashboard and reports.
type UserWithMovieCount struct {
	domain.User
	MoviesCount int64 `json:"movies_count" gorm:"column:movies_count"`
}

// ListWithMovieCounts left-joins users against their movies and counts
// per user, scoped to one admin, with offset paging.
func (r *UserRepository) ListWithMovieCounts(ctx context.Context, adminID int64, limit, offset int) ([]UserWithMovieCount, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("users.admin_id = ?", adminID)

	var total int64
	if tx := base.Session(&gorm.Session{}).Count(&total); tx.Error != nil {
		return nil, 0, tx.Error
	}

	var rows []UserWithMovieCount
	tx := base.
		Select("users.*, COUNT(movies.id) AS movies_count").
		Joins("LEFT JOIN movies ON movies.user_id = users.id").
		Group("users.id").
		Order("users.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}
	return rows, total, nil
}
