package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MedusCode/kupipodariday-backend/internal/apperrors"
	model "github.com/MedusCode/kupipodariday-backend/internal/models"
)

// WishlistRepo is the Postgres-backed WishlistStore.
type WishlistRepo struct {
	db *gorm.DB
}

// NewWishlistRepo creates a new WishlistRepo instance.
func NewWishlistRepo(db *gorm.DB) *WishlistRepo {
	return &WishlistRepo{db: db}
}

// Create inserts the wishlist row and its item references in one
// transaction. Items are stored by id without an eager existence check:
// a dangling id trips the foreign key and rolls back the whole
// creation, so no wishlist is ever persisted with a partial item set.
func (r *WishlistRepo) Create(ctx context.Context, wishlist *model.Wishlist, itemIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Owner", "Items").Create(wishlist).Error; err != nil {
			return err
		}
		return insertItems(tx, wishlist.ID, itemIDs)
	})
	if err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			return fmt.Errorf("create wishlist: %w", apperrors.ErrWishReferenceInvalid)
		}
		return fmt.Errorf("create wishlist: %w", err)
	}
	return nil
}

// FindByID loads a wishlist with its owner and items.
func (r *WishlistRepo) FindByID(ctx context.Context, id uint) (*model.Wishlist, error) {
	var wishlist model.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Items").
		First(&wishlist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find wishlist %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("find wishlist %d: %w", id, err)
	}
	return &wishlist, nil
}

// FindAll returns every wishlist with relations.
func (r *WishlistRepo) FindAll(ctx context.Context) ([]model.Wishlist, error) {
	var wishlists []model.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Items").
		Find(&wishlists).Error
	if err != nil {
		return nil, fmt.Errorf("list wishlists: %w", err)
	}
	return wishlists, nil
}

// Update patches the wishlist fields and, when itemIDs is non-nil,
// replaces the entire item set, all in one transaction. Returns the
// rows affected by the id-conditioned field update so a concurrent
// delete surfaces as zero rows instead of a resurrected row.
func (r *WishlistRepo) Update(ctx context.Context, id uint, fields map[string]any, itemIDs []uint) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(fields) > 0 {
			res := tx.Model(&model.Wishlist{}).Where("id = ?", id).Updates(fields)
			if res.Error != nil {
				return res.Error
			}
			affected = res.RowsAffected
		} else {
			// Item-only patch: existence is still probed so itemIDs
			// cannot recreate rows for a concurrently deleted wishlist.
			var count int64
			if err := tx.Model(&model.Wishlist{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			affected = count
		}
		if affected == 0 || itemIDs == nil {
			return nil
		}
		if err := tx.Exec("DELETE FROM wishlist_items WHERE wishlist_id = ?", id).Error; err != nil {
			return err
		}
		return insertItems(tx, id, itemIDs)
	})
	if err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("update wishlist %d: %w", id, apperrors.ErrWishReferenceInvalid)
		}
		return 0, fmt.Errorf("update wishlist %d: %w", id, err)
	}
	return affected, nil
}

// Delete removes a wishlist; its item rows cascade.
func (r *WishlistRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Exec("DELETE FROM wishlists WHERE id = ?", id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete wishlist %d: %w", id, res.Error)
	}
	return res.RowsAffected, nil
}

func insertItems(tx *gorm.DB, wishlistID uint, itemIDs []uint) error {
	for _, itemID := range itemIDs {
		err := tx.Exec(
			"INSERT INTO wishlist_items (wishlist_id, wish_id) VALUES (?, ?)",
			wishlistID, itemID).Error
		if err != nil {
			return err
		}
	}
	return nil
}
