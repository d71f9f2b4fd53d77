package users

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MedusCode/kupipodariday-backend/internal/apperrors"
	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	"github.com/MedusCode/kupipodariday-backend/internal/repository"
)

// Service defines the business logic for user accounts and profiles.
type Service struct {
	users  repository.UserStore
	wishes repository.WishStore
}

// NewService creates a new user Service instance.
func NewService(users repository.UserStore, wishes repository.WishStore) *Service {
	return &Service{users: users, wishes: wishes}
}

// RegisterInput carries a new account. About and Avatar may be empty;
// the store's column defaults then apply.
type RegisterInput struct {
	Username string
	About    string
	Avatar   string
	Email    string
	Password string
}

// Register hashes the password and stores the account. Username and
// email collisions surface as ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := &model.User{
		Username: input.Username,
		About:    input.About,
		Avatar:   input.Avatar,
		Email:    input.Email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("service: failed to register user %q: %w", input.Username, err)
	}

	return user, nil
}

// GetByID returns a user by primary key.
func (s *Service) GetByID(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get user %d: %w", userID, err)
	}
	return user, nil
}

// GetByUsername returns a user by unique username. The password hash is
// populated; callers serializing the user rely on the model never
// marshaling it.
func (s *Service) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get user %q: %w", username, err)
	}
	return user, nil
}

// Update patches the profile of userID. A present password is re-hashed
// before it reaches the store.
func (s *Service) Update(ctx context.Context, userID uint, patch model.UserPatch) (*model.User, error) {
	fields := patch.Fields()
	if raw, ok := fields["password"]; ok {
		hash, err := bcrypt.GenerateFromPassword([]byte(raw.(string)), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("service: failed to hash password: %w", err)
		}
		fields["password"] = string(hash)
	}

	if len(fields) > 0 {
		affected, err := s.users.Update(ctx, userID, fields)
		if err != nil {
			return nil, fmt.Errorf("service: failed to update user %d: %w", userID, err)
		}
		if affected == 0 {
			return nil, fmt.Errorf("service: user %d: %w", userID, apperrors.ErrNotFound)
		}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to reload user %d: %w", userID, err)
	}
	return user, nil
}

// Search finds users by exact username or email.
func (s *Service) Search(ctx context.Context, query string) ([]model.User, error) {
	found, err := s.users.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search users: %w", err)
	}
	return found, nil
}

// WishesOf returns all wishes owned by username.
func (s *Service) WishesOf(ctx context.Context, username string) ([]model.Wish, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get user %q: %w", username, err)
	}

	wishes, err := s.wishes.FindByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get wishes of user %q: %w", username, err)
	}
	return wishes, nil
}
