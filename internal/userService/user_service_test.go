package users

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MedusCode/kupipodariday-backend/internal/apperrors"
	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	"github.com/MedusCode/kupipodariday-backend/internal/repository"
)

func strPtr(s string) *string { return &s }

// Tests Register
func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := repository.NewMockUserStore(ctrl)
	mockWishes := repository.NewMockWishStore(ctrl)
	service := NewService(mockUsers, mockWishes)

	t.Run("stores_bcrypt_hash_not_plaintext", func(t *testing.T) {
		var created *model.User
		mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *model.User) error {
				created = user
				user.ID = 10
				return nil
			})

		user, err := service.Register(context.Background(), RegisterInput{
			Username: "sasha",
			Email:    "sasha@example.com",
			Password: "correct horse",
		})

		require.NoError(t, err)
		require.Equal(t, uint(10), user.ID)
		require.NotEqual(t, "correct horse", created.Password)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("correct horse")))
	})

	t.Run("duplicate_credentials_conflict", func(t *testing.T) {
		mockUsers.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(apperrors.ErrAlreadyExists)

		user, err := service.Register(context.Background(), RegisterInput{
			Username: "sasha",
			Email:    "sasha@example.com",
			Password: "pw",
		})

		require.ErrorIs(t, err, apperrors.ErrAlreadyExists)
		require.Nil(t, user)
	})
}

// Tests Update
func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := repository.NewMockUserStore(ctrl)
	mockWishes := repository.NewMockWishStore(ctrl)
	service := NewService(mockUsers, mockWishes)

	t.Run("rehashes_present_password", func(t *testing.T) {
		mockUsers.EXPECT().Update(gomock.Any(), uint(10), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, fields map[string]any) (int64, error) {
				hashed := fields["password"].(string)
				require.NotEqual(t, "new secret", hashed)
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("new secret")))
				return 1, nil
			})
		mockUsers.EXPECT().FindByID(gomock.Any(), uint(10)).
			Return(&model.User{ID: 10, Username: "sasha"}, nil)

		user, err := service.Update(context.Background(), 10, model.UserPatch{
			Password: strPtr("new secret"),
		})

		require.NoError(t, err)
		require.Equal(t, "sasha", user.Username)
	})

	t.Run("empty_patch_reloads_profile", func(t *testing.T) {
		mockUsers.EXPECT().FindByID(gomock.Any(), uint(10)).
			Return(&model.User{ID: 10}, nil)

		user, err := service.Update(context.Background(), 10, model.UserPatch{})

		require.NoError(t, err)
		require.Equal(t, uint(10), user.ID)
	})

	t.Run("vanished_user_not_found", func(t *testing.T) {
		mockUsers.EXPECT().Update(gomock.Any(), uint(10), gomock.Any()).
			Return(int64(0), nil)

		user, err := service.Update(context.Background(), 10, model.UserPatch{
			About: strPtr("hi"),
		})

		require.ErrorIs(t, err, apperrors.ErrNotFound)
		require.Nil(t, user)
	})
}

// Tests WishesOf
func TestService_WishesOf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := repository.NewMockUserStore(ctrl)
	mockWishes := repository.NewMockWishStore(ctrl)
	service := NewService(mockUsers, mockWishes)

	t.Run("resolves_username_then_owner", func(t *testing.T) {
		mockUsers.EXPECT().FindByUsername(gomock.Any(), "sasha").
			Return(&model.User{ID: 10, Username: "sasha"}, nil)
		mockWishes.EXPECT().FindByOwner(gomock.Any(), uint(10)).
			Return([]model.Wish{{ID: 1, OwnerID: 10}}, nil)

		wishes, err := service.WishesOf(context.Background(), "sasha")

		require.NoError(t, err)
		require.Len(t, wishes, 1)
	})

	t.Run("unknown_username_not_found", func(t *testing.T) {
		mockUsers.EXPECT().FindByUsername(gomock.Any(), "ghost").
			Return(nil, apperrors.ErrNotFound)

		wishes, err := service.WishesOf(context.Background(), "ghost")

		require.ErrorIs(t, err, apperrors.ErrNotFound)
		require.Nil(t, wishes)
	})
}
