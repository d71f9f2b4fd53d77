package models

// Patch types carry partial updates with explicit field presence: a nil
// pointer means "leave untouched", a non-nil pointer to a zero value
// means "set to empty". Fields() renders the present fields as a
// column->value map ready for a conditional UPDATE.

// WishPatch covers the content fields frozen once a wish is funded.
type WishPatch struct {
	Name        *string  `json:"name"`
	Link        *string  `json:"link"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

func (p WishPatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Link != nil {
		fields["link"] = *p.Link
	}
	if p.Image != nil {
		fields["image"] = *p.Image
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	return fields
}

// WishlistPatch replaces the whole item set when ItemIDs is present.
type WishlistPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	ItemIDs     *[]uint `json:"itemsId"`
}

func (p WishlistPatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Image != nil {
		fields["image"] = *p.Image
	}
	return fields
}

// UserPatch covers profile updates; Password carries the raw secret and
// is hashed by the user service before it reaches the store.
type UserPatch struct {
	Username *string `json:"username" binding:"omitempty,min=2,max=30"`
	About    *string `json:"about" binding:"omitempty,max=200"`
	Avatar   *string `json:"avatar"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=2"`
}

func (p UserPatch) Fields() map[string]any {
	fields := map[string]any{}
	if p.Username != nil {
		fields["username"] = *p.Username
	}
	if p.About != nil {
		fields["about"] = *p.About
	}
	if p.Avatar != nil {
		fields["avatar"] = *p.Avatar
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.Password != nil {
		fields["password"] = *p.Password
	}
	return fields
}
