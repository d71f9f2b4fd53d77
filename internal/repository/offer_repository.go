package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MedusCode/kupipodariday-backend/internal/apperrors"
	model "github.com/MedusCode/kupipodariday-backend/internal/models"
)

// OfferRepo is the Postgres-backed OfferStore.
type OfferRepo struct {
	db *gorm.DB
}

// NewOfferRepo creates a new OfferRepo instance.
func NewOfferRepo(db *gorm.DB) *OfferRepo {
	return &OfferRepo{db: db}
}

// Create inserts an offer row. A foreign-key violation means the wish
// disappeared between the raise and the insert, which the caller
// observes as the wish not being found.
func (r *OfferRepo) Create(ctx context.Context, offer *model.Offer) error {
	err := r.db.WithContext(ctx).Omit("Item", "User").Create(offer).Error
	if err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			return fmt.Errorf("create offer for wish %d: %w", offer.ItemID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("create offer for wish %d: %w", offer.ItemID, err)
	}
	return nil
}

// FindByID loads an offer with its wish and pledging user.
func (r *OfferRepo) FindByID(ctx context.Context, id uint) (*model.Offer, error) {
	var offer model.Offer
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("User").
		First(&offer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find offer %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("find offer %d: %w", id, err)
	}
	return &offer, nil
}

// FindAll returns every offer with relations, insertion order.
func (r *OfferRepo) FindAll(ctx context.Context) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("User").
		Order("id ASC").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}
