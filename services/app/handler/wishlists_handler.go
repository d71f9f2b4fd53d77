package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	wishlists "github.com/MedusCode/kupipodariday-backend/internal/wishlistService"
	"github.com/MedusCode/kupipodariday-backend/services/app/helpers"
	"github.com/MedusCode/kupipodariday-backend/utils"
)

type WishlistsHandler struct {
	service WishlistService
}

func NewWishlistsHandler(service WishlistService) *WishlistsHandler {
	return &WishlistsHandler{service: service}
}

// CreateWishlistHandler handles POST /wishlists
func (h *WishlistsHandler) CreateWishlistHandler(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req helpers.CreateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateWishlistHandler", err)
		return
	}

	wishlist, err := h.service.Create(c.Request.Context(), wishlists.CreateWishlistInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		ItemIDs:     req.ItemIDs,
	}, user.ID)
	if err != nil {
		helpers.HandleServiceError(c, "CreateWishlistHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, wishlist, "wishlist created successfully")
	helpers.LogSuccess("CreateWishlistHandler", "wishlist created successfully", map[string]any{
		"wishlist_id": wishlist.ID,
		"user_id":     user.ID,
	})
}

// GetWishlistsHandler handles GET /wishlists
func (h *WishlistsHandler) GetWishlistsHandler(c *gin.Context) {
	found, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "GetWishlistsHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, found, "wishlists retrieved")
}

// GetWishlistHandler handles GET /wishlists/:id
func (h *WishlistsHandler) GetWishlistHandler(c *gin.Context) {
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		return
	}

	wishlist, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		helpers.HandleServiceError(c, "GetWishlistHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, wishlist, "wishlist retrieved")
}

// UpdateWishlistHandler handles PATCH /wishlists/:id
func (h *WishlistsHandler) UpdateWishlistHandler(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var patch model.WishlistPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		helpers.HandleBindError(c, "UpdateWishlistHandler", err)
		return
	}

	wishlist, err := h.service.CheckOwner(c.Request.Context(), id, user.ID)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateWishlistHandler", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), wishlist, patch)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateWishlistHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "wishlist updated successfully")
	helpers.LogSuccess("UpdateWishlistHandler", "wishlist updated successfully", map[string]any{
		"wishlist_id": id,
		"user_id":     user.ID,
	})
}

// DeleteWishlistHandler handles DELETE /wishlists/:id
func (h *WishlistsHandler) DeleteWishlistHandler(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		return
	}

	wishlist, err := h.service.CheckOwner(c.Request.Context(), id, user.ID)
	if err != nil {
		helpers.HandleServiceError(c, "DeleteWishlistHandler", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		helpers.HandleServiceError(c, "DeleteWishlistHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, wishlist, "wishlist deleted successfully")
	helpers.LogSuccess("DeleteWishlistHandler", "wishlist deleted successfully", map[string]any{
		"wishlist_id": id,
		"user_id":     user.ID,
	})
}
