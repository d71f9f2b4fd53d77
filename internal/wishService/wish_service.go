package wishes

import (
	"context"
	"fmt"

	"github.com/MedusCode/kupipodariday-backend/internal/apperrors"
	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	"github.com/MedusCode/kupipodariday-backend/internal/repository"
)

const (
	lastWishesLimit = 40
	topWishesLimit  = 20
)

// Service defines the business logic for wishes: creation, reads, the
// ownership guard, content updates frozen by funding, deletion and
// cross-user copying.
type Service struct {
	repo repository.WishStore
}

// NewService creates a new wish Service instance.
func NewService(repo repository.WishStore) *Service {
	return &Service{repo: repo}
}

// CreateWishInput carries the content fields of a new wish.
type CreateWishInput struct {
	Name        string
	Link        string
	Image       string
	Price       float64
	Description string
}

// Create stores a new wish for ownerID with both counters at zero.
func (s *Service) Create(ctx context.Context, input CreateWishInput, ownerID uint) (*model.Wish, error) {
	wish := &model.Wish{
		Name:        input.Name,
		Link:        input.Link,
		Image:       input.Image,
		Price:       input.Price,
		Description: input.Description,
		Raised:      0,
		Copied:      0,
		OwnerID:     ownerID,
	}

	if err := s.repo.Create(ctx, wish); err != nil {
		return nil, fmt.Errorf("service: failed to create wish for user %d: %w", ownerID, err)
	}

	return wish, nil
}

// CheckOwner loads the wish with its owner and offers populated and
// asserts userID owns it. The loaded wish is returned so owner-gated
// mutations work on this snapshot instead of fetching again.
func (s *Service) CheckOwner(ctx context.Context, wishID, userID uint) (*model.Wish, error) {
	wish, err := s.repo.FindByID(ctx, wishID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load wish %d: %w", wishID, err)
	}

	if wish.OwnerID != userID {
		return nil, fmt.Errorf("service: user %d does not own wish %d: %w", userID, wishID, apperrors.ErrForbidden)
	}

	return wish, nil
}

// Update patches the content fields of an unfunded wish. The wish
// argument is the snapshot returned by CheckOwner. Funding freezes
// content: any existing offer rejects the update, and the store-level
// write re-verifies that inside the same statement, so a pledge landing
// between the check and the write still fails the update closed.
func (s *Service) Update(ctx context.Context, wish *model.Wish, patch model.WishPatch) (*model.Wish, error) {
	if len(wish.Offers) > 0 {
		return nil, fmt.Errorf("service: wish %d: %w", wish.ID, apperrors.ErrAlreadyFunded)
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		return wish, nil
	}

	affected, err := s.repo.UpdateContentIfUnfunded(ctx, wish.ID, fields)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update wish %d: %w", wish.ID, err)
	}
	if affected == 0 {
		// Either the wish vanished or its first offer arrived after the
		// guard ran; one re-read tells which.
		if _, err := s.repo.FindByID(ctx, wish.ID); err != nil {
			return nil, fmt.Errorf("service: failed to update wish %d: %w", wish.ID, err)
		}
		return nil, fmt.Errorf("service: wish %d funded concurrently: %w", wish.ID, apperrors.ErrAlreadyFunded)
	}

	updated, err := s.repo.FindByID(ctx, wish.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to reload wish %d: %w", wish.ID, err)
	}
	return updated, nil
}

// Delete removes a wish by id. Callers must have run CheckOwner first;
// the delete itself is conditioned on the id so a concurrent removal
// surfaces as not found.
func (s *Service) Delete(ctx context.Context, wishID uint) error {
	affected, err := s.repo.Delete(ctx, wishID)
	if err != nil {
		return fmt.Errorf("service: failed to delete wish %d: %w", wishID, err)
	}
	if affected == 0 {
		return fmt.Errorf("service: wish %d: %w", wishID, apperrors.ErrNotFound)
	}
	return nil
}

// Copy clones somebody else's wish into the copier's own list. The
// source's copy counter is incremented first, atomically; only a
// successful increment proceeds to the clone, so a failed creation
// never hides a lost counter update. The clone gets the source's
// content verbatim and fresh counters.
func (s *Service) Copy(ctx context.Context, wishID, userID uint) (*model.Wish, error) {
	source, err := s.repo.FindByID(ctx, wishID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load wish %d: %w", wishID, err)
	}

	if source.OwnerID == userID {
		return nil, fmt.Errorf("service: user %d owns wish %d: %w", userID, wishID, apperrors.ErrSelfCopy)
	}

	affected, err := s.repo.IncrementCopied(ctx, wishID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to increment copied of wish %d: %w", wishID, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("service: wish %d: %w", wishID, apperrors.ErrNotFound)
	}

	clone := &model.Wish{
		Name:        source.Name,
		Link:        source.Link,
		Image:       source.Image,
		Price:       source.Price,
		Description: source.Description,
		Raised:      0,
		Copied:      0,
		OwnerID:     userID,
	}
	if err := s.repo.Create(ctx, clone); err != nil {
		return nil, fmt.Errorf("service: failed to create copy of wish %d: %w", wishID, err)
	}

	return clone, nil
}

// GetByID returns a wish with owner and offers populated.
func (s *Service) GetByID(ctx context.Context, wishID uint) (*model.Wish, error) {
	wish, err := s.repo.FindByID(ctx, wishID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get wish %d: %w", wishID, err)
	}
	return wish, nil
}

// GetLast returns the 40 newest wishes.
func (s *Service) GetLast(ctx context.Context) ([]model.Wish, error) {
	wishes, err := s.repo.Last(ctx, lastWishesLimit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get last wishes: %w", err)
	}
	return wishes, nil
}

// GetTop returns the 20 most copied wishes.
func (s *Service) GetTop(ctx context.Context) ([]model.Wish, error) {
	wishes, err := s.repo.Top(ctx, topWishesLimit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get top wishes: %w", err)
	}
	return wishes, nil
}

// GetByOwner returns all wishes of one user.
func (s *Service) GetByOwner(ctx context.Context, ownerID uint) ([]model.Wish, error) {
	wishes, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get wishes of user %d: %w", ownerID, err)
	}
	return wishes, nil
}
