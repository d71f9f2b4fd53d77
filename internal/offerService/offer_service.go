package offers

import (
	"context"
	"fmt"

	"github.com/MedusCode/kupipodariday-backend/internal/apperrors"
	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	"github.com/MedusCode/kupipodariday-backend/internal/repository"
)

// Service defines the business logic for pledging money toward wishes.
type Service struct {
	offers repository.OfferStore
	wishes repository.WishStore
}

// NewService creates a new offer Service instance.
func NewService(offers repository.OfferStore, wishes repository.WishStore) *Service {
	return &Service{offers: offers, wishes: wishes}
}

// PlaceOffer records a pledge of amount by userID toward a wish. The
// raised counter is bumped first through a single relative update; the
// offer row is inserted only after that succeeds, so raised always
// accounts for every committed offer exactly once. Amounts are
// validated at the HTTP layer too, but non-positive values are rejected
// here regardless of the caller.
//
// Pledging toward one's own wish is allowed; only copying is blocked.
func (s *Service) PlaceOffer(ctx context.Context, wishID uint, amount float64, userID uint) (*model.Offer, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("service: %w - got %.2f", apperrors.ErrInvalidAmount, amount)
	}

	affected, err := s.wishes.Raise(ctx, wishID, amount)
	if err != nil {
		return nil, fmt.Errorf("service: failed to raise wish %d: %w", wishID, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("service: wish %d: %w", wishID, apperrors.ErrNotFound)
	}

	offer := &model.Offer{
		Amount: amount,
		ItemID: wishID,
		UserID: userID,
	}
	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("service: failed to record offer for wish %d by user %d: %w", wishID, userID, err)
	}

	return offer, nil
}

// GetByID returns an offer with its wish and pledging user.
func (s *Service) GetByID(ctx context.Context, offerID uint) (*model.Offer, error) {
	offer, err := s.offers.FindByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get offer %d: %w", offerID, err)
	}
	return offer, nil
}

// GetAll returns every offer in insertion order.
func (s *Service) GetAll(ctx context.Context) ([]model.Offer, error) {
	offers, err := s.offers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list offers: %w", err)
	}
	return offers, nil
}
