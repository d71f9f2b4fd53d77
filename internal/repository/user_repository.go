package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MedusCode/kupipodariday-backend/internal/apperrors"
	model "github.com/MedusCode/kupipodariday-backend/internal/models"
)

// UserRepo is the Postgres-backed UserStore.
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo creates a new UserRepo instance.
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a user; a duplicate username or email surfaces as
// ErrAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Omit("Wishes", "Offers", "Wishlists").Create(user).Error
	if err != nil {
		if apperrors.IsDuplicateKey(err) {
			return fmt.Errorf("create user %q: %w", user.Username, apperrors.ErrAlreadyExists)
		}
		return fmt.Errorf("create user %q: %w", user.Username, err)
	}
	return nil
}

// FindByID loads a user by primary key.
func (r *UserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find user %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &user, nil
}

// FindByUsername loads a user by unique username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find user %q: %w", username, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return &user, nil
}

// Update patches profile fields conditioned on the user id.
func (r *UserRepo) Update(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		if apperrors.IsDuplicateKey(res.Error) {
			return 0, fmt.Errorf("update user %d: %w", id, apperrors.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("update user %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// Search finds users whose username or email matches the query exactly.
func (r *UserRepo) Search(ctx context.Context, query string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", query, query).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("search users by %q: %w", query, err)
	}
	return users, nil
}
