// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"task_backend/internal/feature/auth/domain/entity"
	"task_backend/internal/feature/auth/usecase"
)

// userPostgres is a GORM implementation of the UserRepository interface.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new userPostgres backed by the given connection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create adds a user to the database. Returns usecase.ErrEmailAlreadyExists
// when the unique email index rejects the row. Requires the connection to be
// opened with TranslateError so driver duplicate errors surface as
// gorm.ErrDuplicatedKey.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmailLike retrieves a user whose email contains the given string,
// case-insensitively. Substring matching mirrors the legacy lookup; exact
// equality would be the obvious fix but callers depend on the current
// collision behavior.
func (r *userPostgres) FindByEmailLike(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	pattern := "%" + strings.ToLower(email) + "%"
	if err := r.db.WithContext(ctx).Where("lower(email) LIKE ?", pattern).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
func (r *userPostgres) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateRefreshTokenHash overwrites the stored refresh-token hash for the
// user. Last write wins.
func (r *userPostgres) UpdateRefreshTokenHash(ctx context.Context, userID, tokenHash string) error {
	res := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", userID).
		Update("refresh_token_hash", tokenHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
