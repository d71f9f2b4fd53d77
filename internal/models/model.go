package models

import "time"

// User represents a registered account that owns wishes and wishlists
// and places offers.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:30;uniqueIndex;not null" json:"username"`
	About     string    `gorm:"size:200;default:'Пока ничего не рассказал о себе'" json:"about"`
	Avatar    string    `gorm:"size:255;default:'https://i.pravatar.cc/300'" json:"avatar"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Wishes    []Wish     `gorm:"foreignKey:OwnerID" json:"wishes,omitempty"`
	Offers    []Offer    `gorm:"foreignKey:UserID" json:"offers,omitempty"`
	Wishlists []Wishlist `gorm:"foreignKey:OwnerID" json:"wishlists,omitempty"`
}

// Wish represents a priced item a user wants. Raised and Copied are
// counters mutated only through atomic relative updates at the store;
// the owner never changes after creation.
type Wish struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:250;not null" json:"name"`
	Link        string    `gorm:"size:255" json:"link"`
	Image       string    `gorm:"size:255" json:"image"`
	Price       float64   `gorm:"not null;check:price >= 0" json:"price"`
	Raised      float64   `gorm:"not null;default:0" json:"raised"`
	Copied      int       `gorm:"not null;default:0" json:"copied"`
	Description string    `gorm:"size:1024" json:"description"`
	OwnerID     uint      `gorm:"not null;index" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	// Insertion order is meaning-bearing: "last offers" views rely on it.
	Offers []Offer `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"offers,omitempty"`
}

// Offer is a monetary pledge toward another user's wish. Offers are
// append-only: never updated or deleted by users.
type Offer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Amount    float64   `gorm:"not null;check:amount > 0" json:"amount"`
	ItemID    uint      `gorm:"not null;index" json:"item_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	Item *Wish `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// Wishlist is a named collection of wishes curated by one user. Items
// are stored by reference in the wishlist_items join table.
type Wishlist struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:250;not null" json:"name"`
	Description string    `gorm:"size:1500" json:"description"`
	Image       string    `gorm:"size:255" json:"image"`
	OwnerID     uint      `gorm:"not null;index" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Owner *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Items []Wish `gorm:"many2many:wishlist_items;constraint:OnDelete:CASCADE" json:"items"`
}
