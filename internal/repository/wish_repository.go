package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MedusCode/kupipodariday-backend/internal/apperrors"
	model "github.com/MedusCode/kupipodariday-backend/internal/models"
)

// WishRepo is the Postgres-backed WishStore.
type WishRepo struct {
	db *gorm.DB
}

// NewWishRepo creates a new WishRepo instance.
func NewWishRepo(db *gorm.DB) *WishRepo {
	return &WishRepo{db: db}
}

// Create inserts a wish. Associations are never written through here;
// OwnerID must already be set.
func (r *WishRepo) Create(ctx context.Context, wish *model.Wish) error {
	err := r.db.WithContext(ctx).Omit("Owner", "Offers").Create(wish).Error
	if err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			return fmt.Errorf("create wish: owner %d: %w", wish.OwnerID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("create wish: %w", err)
	}
	return nil
}

// FindByID loads a wish with its owner and its offers (pledging users
// included, insertion order preserved).
func (r *WishRepo) FindByID(ctx context.Context, id uint) (*model.Wish, error) {
	var wish model.Wish
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Offers", func(db *gorm.DB) *gorm.DB { return db.Order("offers.id ASC") }).
		Preload("Offers.User").
		First(&wish, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find wish %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("find wish %d: %w", id, err)
	}
	return &wish, nil
}

// FindByOwner returns all wishes owned by a user, newest first.
func (r *WishRepo) FindByOwner(ctx context.Context, ownerID uint) ([]model.Wish, error) {
	var wishes []model.Wish
	err := r.db.WithContext(ctx).
		Preload("Offers").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&wishes).Error
	if err != nil {
		return nil, fmt.Errorf("find wishes of user %d: %w", ownerID, err)
	}
	return wishes, nil
}

// Last returns the most recently created wishes.
func (r *WishRepo) Last(ctx context.Context, limit int) ([]model.Wish, error) {
	return r.list(ctx, "created_at DESC", limit)
}

// Top returns the most copied wishes.
func (r *WishRepo) Top(ctx context.Context, limit int) ([]model.Wish, error) {
	return r.list(ctx, "copied DESC", limit)
}

func (r *WishRepo) list(ctx context.Context, order string, limit int) ([]model.Wish, error) {
	var wishes []model.Wish
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Offers").
		Order(order).
		Limit(limit).
		Find(&wishes).Error
	if err != nil {
		return nil, fmt.Errorf("list wishes by %s: %w", order, err)
	}
	return wishes, nil
}

// Raise adds amount to the raised counter as a single relative update.
// A read-modify-write here would lose pledges under concurrency.
func (r *WishRepo) Raise(ctx context.Context, id uint, amount float64) (int64, error) {
	res := r.db.WithContext(ctx).Exec(
		"UPDATE wishes SET raised = raised + ? WHERE id = ?", amount, id)
	if res.Error != nil {
		return 0, fmt.Errorf("raise wish %d by %.2f: %w", id, amount, res.Error)
	}
	return res.RowsAffected, nil
}

// IncrementCopied bumps the copy counter, same atomicity contract as Raise.
func (r *WishRepo) IncrementCopied(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Exec(
		"UPDATE wishes SET copied = copied + 1 WHERE id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("increment copied of wish %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// UpdateContentIfUnfunded writes the patched content fields only while
// the wish has no offers. The offer check sits inside the same
// statement, so a concurrent first pledge makes this affect zero rows
// instead of overwriting a frozen wish.
func (r *WishRepo) UpdateContentIfUnfunded(ctx context.Context, id uint, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Wish{}).
		Where("id = ? AND NOT EXISTS (SELECT 1 FROM offers WHERE offers.item_id = wishes.id)", id).
		Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("update wish %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes a wish; offers and wishlist item rows cascade.
func (r *WishRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Exec("DELETE FROM wishes WHERE id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete wish %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}
