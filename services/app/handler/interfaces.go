package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	users "github.com/MedusCode/kupipodariday-backend/internal/userService"
	wishes "github.com/MedusCode/kupipodariday-backend/internal/wishService"
	wishlists "github.com/MedusCode/kupipodariday-backend/internal/wishlistService"
)

// Service contracts consumed by the HTTP handlers.

type AuthService interface {
	Signup(ctx context.Context, input users.RegisterInput) (*model.User, string, error)
	Signin(ctx context.Context, username, password string) (string, error)
}

type UserService interface {
	GetByID(ctx context.Context, userID uint) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Update(ctx context.Context, userID uint, patch model.UserPatch) (*model.User, error)
	Search(ctx context.Context, query string) ([]model.User, error)
	WishesOf(ctx context.Context, username string) ([]model.Wish, error)
}

type WishService interface {
	Create(ctx context.Context, input wishes.CreateWishInput, ownerID uint) (*model.Wish, error)
	GetByID(ctx context.Context, wishID uint) (*model.Wish, error)
	GetLast(ctx context.Context) ([]model.Wish, error)
	GetTop(ctx context.Context) ([]model.Wish, error)
	GetByOwner(ctx context.Context, ownerID uint) ([]model.Wish, error)
	CheckOwner(ctx context.Context, wishID, userID uint) (*model.Wish, error)
	Update(ctx context.Context, wish *model.Wish, patch model.WishPatch) (*model.Wish, error)
	Delete(ctx context.Context, wishID uint) error
	Copy(ctx context.Context, wishID, userID uint) (*model.Wish, error)
}

type OfferService interface {
	PlaceOffer(ctx context.Context, wishID uint, amount float64, userID uint) (*model.Offer, error)
	GetByID(ctx context.Context, offerID uint) (*model.Offer, error)
	GetAll(ctx context.Context) ([]model.Offer, error)
}

type WishlistService interface {
	Create(ctx context.Context, input wishlists.CreateWishlistInput, ownerID uint) (*model.Wishlist, error)
	CheckOwner(ctx context.Context, wishlistID, userID uint) (*model.Wishlist, error)
	Update(ctx context.Context, wishlist *model.Wishlist, patch model.WishlistPatch) (*model.Wishlist, error)
	Delete(ctx context.Context, wishlistID uint) error
	GetByID(ctx context.Context, wishlistID uint) (*model.Wishlist, error)
	GetAll(ctx context.Context) ([]model.Wishlist, error)
}

// CurrentUserKey is where the auth middleware stores the resolved user.
const CurrentUserKey = "currentUser"

// CurrentUser returns the authenticated user set by the middleware.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
