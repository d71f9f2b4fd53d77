package helpers

// Request DTOs

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=2,max=30"`
	About    string `json:"about" binding:"omitempty,max=200"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=2"`
}

type SigninRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateWishRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=250"`
	Link        string  `json:"link" binding:"required,url"`
	Image       string  `json:"image" binding:"required,url"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description" binding:"omitempty,max=1024"`
}

type CreateOfferRequest struct {
	ItemID uint    `json:"itemId" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreateWishlistRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=250"`
	Description string `json:"description" binding:"omitempty,max=1500"`
	Image       string `json:"image" binding:"omitempty,url"`
	ItemIDs     []uint `json:"itemsId"`
}

type SearchUserRequest struct {
	Query string `json:"query" binding:"required"`
}

// Response DTOs

type SignupResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	About       string `json:"about"`
	Avatar      string `json:"avatar"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

type SigninResponse struct {
	AccessToken string `json:"access_token"`
}
