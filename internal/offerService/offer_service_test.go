package offers

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/MedusCode/kupipodariday-backend/internal/apperrors"
	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	"github.com/MedusCode/kupipodariday-backend/internal/repository"
)

// Tests PlaceOffer
func TestService_PlaceOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOffers := repository.NewMockOfferStore(ctrl)
	mockWishes := repository.NewMockWishStore(ctrl)
	service := NewService(mockOffers, mockWishes)

	tests := []struct {
		name          string
		wishID        uint
		amount        float64
		userID        uint
		mockSetup     func()
		expectedError error
	}{
		{
			name:   "valid_offer",
			wishID: 1,
			amount: 30,
			userID: 20,
			mockSetup: func() {
				mockWishes.EXPECT().Raise(gomock.Any(), uint(1), 30.0).Return(int64(1), nil)
				mockOffers.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, offer *model.Offer) error {
						require.Equal(t, uint(1), offer.ItemID)
						require.Equal(t, uint(20), offer.UserID)
						require.Equal(t, 30.0, offer.Amount)
						offer.ID = 7
						return nil
					})
			},
			expectedError: nil,
		},
		{
			name:          "zero_amount_rejected_before_store",
			wishID:        1,
			amount:        0,
			userID:        20,
			mockSetup:     func() {},
			expectedError: apperrors.ErrInvalidAmount,
		},
		{
			name:          "negative_amount_rejected_before_store",
			wishID:        1,
			amount:        -5,
			userID:        20,
			mockSetup:     func() {},
			expectedError: apperrors.ErrInvalidAmount,
		},
		{
			name:   "missing_wish_not_found",
			wishID: 99,
			amount: 30,
			userID: 20,
			mockSetup: func() {
				mockWishes.EXPECT().Raise(gomock.Any(), uint(99), 30.0).Return(int64(0), nil)
				// Raise affecting zero rows must stop the flow: no offer insert.
			},
			expectedError: apperrors.ErrNotFound,
		},
		{
			name:   "wish_deleted_between_raise_and_insert",
			wishID: 1,
			amount: 30,
			userID: 20,
			mockSetup: func() {
				mockWishes.EXPECT().Raise(gomock.Any(), uint(1), 30.0).Return(int64(1), nil)
				mockOffers.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
		{
			name:   "raise_failure_propagates",
			wishID: 1,
			amount: 30,
			userID: 20,
			mockSetup: func() {
				mockWishes.EXPECT().Raise(gomock.Any(), uint(1), 30.0).
					Return(int64(0), errors.New("connection reset"))
			},
			expectedError: nil, // wrapped store error, no sentinel to match
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			offer, err := service.PlaceOffer(context.Background(), tc.wishID, tc.amount, tc.userID)

			switch {
			case tc.expectedError != nil:
				require.ErrorIs(t, err, tc.expectedError)
				require.Nil(t, offer)
			case tc.name == "raise_failure_propagates":
				require.Error(t, err)
				require.Nil(t, offer)
			default:
				require.NoError(t, err)
				require.Equal(t, uint(7), offer.ID)
			}
		})
	}
}

// raiseRecorder mimics the store's atomic relative update: the mutex
// stands in for the row lock the database takes per UPDATE statement.
type raiseRecorder struct {
	repository.WishStore

	mu     sync.Mutex
	raised map[uint]float64
	offers int
}

func (r *raiseRecorder) Raise(_ context.Context, id uint, amount float64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.raised[id] += amount
	return 1, nil
}

type countingOfferStore struct {
	repository.OfferStore

	mu    sync.Mutex
	count int
}

func (s *countingOfferStore) Create(_ context.Context, _ *model.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	return nil
}

// Concurrent pledges against one wish must all land in raised exactly
// once each, regardless of interleaving.
func TestService_PlaceOffer_ConcurrentRaises(t *testing.T) {
	t.Parallel()

	wishStore := &raiseRecorder{raised: map[uint]float64{}}
	offerStore := &countingOfferStore{}
	service := NewService(offerStore, wishStore)

	const workers = 50
	const amount = 2.5

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := service.PlaceOffer(context.Background(), 1, amount, uint(100+i))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.Equal(t, workers*amount, wishStore.raised[1])
	require.Equal(t, workers, offerStore.count)
}
