package wishes

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/MedusCode/kupipodariday-backend/internal/apperrors"
	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	"github.com/MedusCode/kupipodariday-backend/internal/repository"
)

func strPtr(s string) *string { return &s }

// Tests CheckOwner
func TestService_CheckOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockWishStore(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name          string
		wishID        uint
		userID        uint
		mockSetup     func()
		expectedError error
	}{
		{
			name:   "owner_passes",
			wishID: 1,
			userID: 10,
			mockSetup: func() {
				mockRepo.EXPECT().FindByID(gomock.Any(), uint(1)).
					Return(&model.Wish{ID: 1, OwnerID: 10}, nil)
			},
			expectedError: nil,
		},
		{
			name:   "non_owner_forbidden",
			wishID: 1,
			userID: 11,
			mockSetup: func() {
				mockRepo.EXPECT().FindByID(gomock.Any(), uint(1)).
					Return(&model.Wish{ID: 1, OwnerID: 10}, nil)
			},
			expectedError: apperrors.ErrForbidden,
		},
		{
			name:   "missing_wish_not_found",
			wishID: 2,
			userID: 10,
			mockSetup: func() {
				mockRepo.EXPECT().FindByID(gomock.Any(), uint(2)).
					Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			wish, err := service.CheckOwner(context.Background(), tc.wishID, tc.userID)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				require.Nil(t, wish)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wishID, wish.ID)
		})
	}
}

// Tests Update
func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockWishStore(ctrl)
	service := NewService(mockRepo)

	patch := model.WishPatch{Name: strPtr("new name")}

	tests := []struct {
		name          string
		wish          *model.Wish
		patch         model.WishPatch
		mockSetup     func()
		expectedError error
	}{
		{
			name:  "unfunded_wish_updates",
			wish:  &model.Wish{ID: 1, OwnerID: 10},
			patch: patch,
			mockSetup: func() {
				mockRepo.EXPECT().
					UpdateContentIfUnfunded(gomock.Any(), uint(1), map[string]any{"name": "new name"}).
					Return(int64(1), nil)
				mockRepo.EXPECT().FindByID(gomock.Any(), uint(1)).
					Return(&model.Wish{ID: 1, OwnerID: 10, Name: "new name"}, nil)
			},
			expectedError: nil,
		},
		{
			name: "funded_wish_rejected_without_write",
			wish: &model.Wish{
				ID:      1,
				OwnerID: 10,
				Offers:  []model.Offer{{ID: 5, Amount: 30}},
			},
			patch:         patch,
			mockSetup:     func() {},
			expectedError: apperrors.ErrAlreadyFunded,
		},
		{
			name:  "empty_patch_is_noop",
			wish:  &model.Wish{ID: 1, OwnerID: 10, Name: "old"},
			patch: model.WishPatch{},
			// No store calls at all for an empty patch.
			mockSetup:     func() {},
			expectedError: nil,
		},
		{
			name:  "concurrent_first_offer_fails_closed",
			wish:  &model.Wish{ID: 1, OwnerID: 10},
			patch: patch,
			mockSetup: func() {
				mockRepo.EXPECT().
					UpdateContentIfUnfunded(gomock.Any(), uint(1), gomock.Any()).
					Return(int64(0), nil)
				// Wish still exists: zero rows means it got funded meanwhile.
				mockRepo.EXPECT().FindByID(gomock.Any(), uint(1)).
					Return(&model.Wish{ID: 1, OwnerID: 10, Offers: []model.Offer{{ID: 9}}}, nil)
			},
			expectedError: apperrors.ErrAlreadyFunded,
		},
		{
			name:  "concurrent_delete_surfaces_not_found",
			wish:  &model.Wish{ID: 1, OwnerID: 10},
			patch: patch,
			mockSetup: func() {
				mockRepo.EXPECT().
					UpdateContentIfUnfunded(gomock.Any(), uint(1), gomock.Any()).
					Return(int64(0), nil)
				mockRepo.EXPECT().FindByID(gomock.Any(), uint(1)).
					Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			updated, err := service.Update(context.Background(), tc.wish, tc.patch)

			if tc.expectedError != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expectedError)
				require.Nil(t, updated)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, updated)
		})
	}
}

// Tests Copy
func TestService_Copy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockWishStore(ctrl)
	service := NewService(mockRepo)

	source := &model.Wish{
		ID:          1,
		Name:        "camera",
		Link:        "https://shop.example/camera",
		Image:       "https://img.example/camera.png",
		Price:       100,
		Raised:      60,
		Copied:      3,
		Description: "mirrorless",
		OwnerID:     10,
	}

	t.Run("self_copy_rejected_counter_untouched", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(source, nil)
		// No IncrementCopied and no Create expectations: the counter and
		// the store must stay untouched.

		clone, err := service.Copy(context.Background(), 1, 10)

		require.ErrorIs(t, err, apperrors.ErrSelfCopy)
		require.Nil(t, clone)
	})

	t.Run("copy_clones_content_and_zeroes_counters", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(source, nil)
		mockRepo.EXPECT().IncrementCopied(gomock.Any(), uint(1)).Return(int64(1), nil)

		var created *model.Wish
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, wish *model.Wish) error {
				created = wish
				wish.ID = 42
				return nil
			})

		clone, err := service.Copy(context.Background(), 1, 20)

		require.NoError(t, err)
		require.NotNil(t, created)
		require.Equal(t, source.Name, created.Name)
		require.Equal(t, source.Link, created.Link)
		require.Equal(t, source.Image, created.Image)
		require.Equal(t, source.Price, created.Price)
		require.Equal(t, source.Description, created.Description)
		require.Equal(t, float64(0), created.Raised)
		require.Equal(t, 0, created.Copied)
		require.Equal(t, uint(20), created.OwnerID)
		require.Empty(t, created.Offers)
		require.Equal(t, uint(42), clone.ID)
	})

	t.Run("increment_failure_stops_clone_creation", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(source, nil)
		mockRepo.EXPECT().IncrementCopied(gomock.Any(), uint(1)).
			Return(int64(0), errors.New("connection reset"))

		clone, err := service.Copy(context.Background(), 1, 20)

		require.Error(t, err)
		require.Nil(t, clone)
	})

	t.Run("vanished_source_surfaces_not_found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), uint(1)).Return(source, nil)
		mockRepo.EXPECT().IncrementCopied(gomock.Any(), uint(1)).Return(int64(0), nil)

		clone, err := service.Copy(context.Background(), 1, 20)

		require.ErrorIs(t, err, apperrors.ErrNotFound)
		require.Nil(t, clone)
	})
}

// Tests Delete
func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockWishStore(ctrl)
	service := NewService(mockRepo)

	t.Run("deletes_existing_wish", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), uint(1)).Return(int64(1), nil)
		require.NoError(t, service.Delete(context.Background(), 1))
	})

	t.Run("zero_rows_means_not_found", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), uint(1)).Return(int64(0), nil)
		require.ErrorIs(t, service.Delete(context.Background(), 1), apperrors.ErrNotFound)
	})
}
