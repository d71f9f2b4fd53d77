package wishlists

import (
	"context"
	"fmt"

	"github.com/MedusCode/kupipodariday-backend/internal/apperrors"
	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	"github.com/MedusCode/kupipodariday-backend/internal/repository"
)

// Service defines the business logic for wishlist composition.
type Service struct {
	repo repository.WishlistStore
}

// NewService creates a new wishlist Service instance.
func NewService(repo repository.WishlistStore) *Service {
	return &Service{repo: repo}
}

// CreateWishlistInput carries the fields of a new wishlist. ItemIDs are
// stored by reference; existence is enforced by the store's foreign
// keys, not checked eagerly.
type CreateWishlistInput struct {
	Name        string
	Description string
	Image       string
	ItemIDs     []uint
}

// Create stores a new wishlist for ownerID atomically with its item
// references. A dangling item id fails the whole creation.
func (s *Service) Create(ctx context.Context, input CreateWishlistInput, ownerID uint) (*model.Wishlist, error) {
	wishlist := &model.Wishlist{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		OwnerID:     ownerID,
	}

	if err := s.repo.Create(ctx, wishlist, input.ItemIDs); err != nil {
		return nil, fmt.Errorf("service: failed to create wishlist for user %d: %w", ownerID, err)
	}

	created, err := s.repo.FindByID(ctx, wishlist.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to reload wishlist %d: %w", wishlist.ID, err)
	}
	return created, nil
}

// CheckOwner loads the wishlist with owner and items populated and
// asserts userID owns it; the loaded wishlist is passed forward to the
// mutation.
func (s *Service) CheckOwner(ctx context.Context, wishlistID, userID uint) (*model.Wishlist, error) {
	wishlist, err := s.repo.FindByID(ctx, wishlistID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load wishlist %d: %w", wishlistID, err)
	}

	if wishlist.OwnerID != userID {
		return nil, fmt.Errorf("service: user %d does not own wishlist %d: %w", userID, wishlistID, apperrors.ErrForbidden)
	}

	return wishlist, nil
}

// Update patches a guard-loaded wishlist. A present ItemIDs replaces
// the entire item set; an absent one leaves the items untouched.
func (s *Service) Update(ctx context.Context, wishlist *model.Wishlist, patch model.WishlistPatch) (*model.Wishlist, error) {
	var itemIDs []uint
	if patch.ItemIDs != nil {
		itemIDs = *patch.ItemIDs
		if itemIDs == nil {
			itemIDs = []uint{}
		}
	}

	affected, err := s.repo.Update(ctx, wishlist.ID, patch.Fields(), itemIDs)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update wishlist %d: %w", wishlist.ID, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("service: wishlist %d: %w", wishlist.ID, apperrors.ErrNotFound)
	}

	updated, err := s.repo.FindByID(ctx, wishlist.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to reload wishlist %d: %w", wishlist.ID, err)
	}
	return updated, nil
}

// Delete removes a wishlist by id after the caller ran CheckOwner.
func (s *Service) Delete(ctx context.Context, wishlistID uint) error {
	affected, err := s.repo.Delete(ctx, wishlistID)
	if err != nil {
		return fmt.Errorf("service: failed to delete wishlist %d: %w", wishlistID, err)
	}
	if affected == 0 {
		return fmt.Errorf("service: wishlist %d: %w", wishlistID, apperrors.ErrNotFound)
	}
	return nil
}

// GetByID returns one wishlist with relations.
func (s *Service) GetByID(ctx context.Context, wishlistID uint) (*model.Wishlist, error) {
	wishlist, err := s.repo.FindByID(ctx, wishlistID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get wishlist %d: %w", wishlistID, err)
	}
	return wishlist, nil
}

// GetAll returns every wishlist.
func (s *Service) GetAll(ctx context.Context) ([]model.Wishlist, error) {
	wishlists, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list wishlists: %w", err)
	}
	return wishlists, nil
}
