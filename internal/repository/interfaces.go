package repository

import (
	"context"

	model "github.com/MedusCode/kupipodariday-backend/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks.go -package=repository

// WishStore is the persistence contract for wishes. The Raise,
// IncrementCopied and UpdateContentIfUnfunded statements are issued as
// single conditional SQL updates so concurrent callers can never lose
// an increment or write through a check that no longer holds. Mutators
// return the number of rows affected; zero means the wish was gone (or,
// for the conditional content update, funded) at write time.
type WishStore interface {
	Create(ctx context.Context, wish *model.Wish) error
	FindByID(ctx context.Context, id uint) (*model.Wish, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]model.Wish, error)
	Last(ctx context.Context, limit int) ([]model.Wish, error)
	Top(ctx context.Context, limit int) ([]model.Wish, error)
	Raise(ctx context.Context, id uint, amount float64) (int64, error)
	IncrementCopied(ctx context.Context, id uint) (int64, error)
	UpdateContentIfUnfunded(ctx context.Context, id uint, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// OfferStore persists pledges. Offers are append-only.
type OfferStore interface {
	Create(ctx context.Context, offer *model.Offer) error
	FindByID(ctx context.Context, id uint) (*model.Offer, error)
	FindAll(ctx context.Context) ([]model.Offer, error)
}

// WishlistStore persists wishlists and their item references. Create
// and Update run in one transaction; a dangling item id fails the whole
// operation without partial writes. A nil itemIDs on Update keeps the
// current item set, a non-nil slice (empty included) replaces it.
type WishlistStore interface {
	Create(ctx context.Context, wishlist *model.Wishlist, itemIDs []uint) error
	FindByID(ctx context.Context, id uint) (*model.Wishlist, error)
	FindAll(ctx context.Context) ([]model.Wishlist, error)
	Update(ctx context.Context, id uint, fields map[string]any, itemIDs []uint) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// UserStore persists accounts. Username and email are unique.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Update(ctx context.Context, id uint, fields map[string]any) (int64, error)
	Search(ctx context.Context, query string) ([]model.User, error)
}
