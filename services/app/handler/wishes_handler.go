package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	wishes "github.com/MedusCode/kupipodariday-backend/internal/wishService"
	"github.com/MedusCode/kupipodariday-backend/services/app/helpers"
	"github.com/MedusCode/kupipodariday-backend/utils"
)

type WishesHandler struct {
	service WishService
}

func NewWishesHandler(service WishService) *WishesHandler {
	return &WishesHandler{service: service}
}

// CreateWishHandler handles POST /wishes
func (h *WishesHandler) CreateWishHandler(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req helpers.CreateWishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateWishHandler", err)
		return
	}

	wish, err := h.service.Create(c.Request.Context(), wishes.CreateWishInput{
		Name:        req.Name,
		Link:        req.Link,
		Image:       req.Image,
		Price:       req.Price,
		Description: req.Description,
	}, user.ID)
	if err != nil {
		helpers.HandleServiceError(c, "CreateWishHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, wish, "wish created successfully")
	helpers.LogSuccess("CreateWishHandler", "wish created successfully", map[string]any{
		"wish_id": wish.ID,
		"user_id": user.ID,
	})
}

// GetLastWishesHandler handles GET /wishes/last
func (h *WishesHandler) GetLastWishesHandler(c *gin.Context) {
	found, err := h.service.GetLast(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "GetLastWishesHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, found, "last wishes retrieved")
}

// GetTopWishesHandler handles GET /wishes/top
func (h *WishesHandler) GetTopWishesHandler(c *gin.Context) {
	found, err := h.service.GetTop(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "GetTopWishesHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, found, "top wishes retrieved")
}

// GetWishHandler handles GET /wishes/:id
func (h *WishesHandler) GetWishHandler(c *gin.Context) {
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		return
	}

	wish, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		helpers.HandleServiceError(c, "GetWishHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, wish, "wish retrieved")
}

// UpdateWishHandler handles PATCH /wishes/:id
func (h *WishesHandler) UpdateWishHandler(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var patch model.WishPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		helpers.HandleBindError(c, "UpdateWishHandler", err)
		return
	}

	wish, err := h.service.CheckOwner(c.Request.Context(), id, user.ID)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateWishHandler", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), wish, patch)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateWishHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "wish updated successfully")
	helpers.LogSuccess("UpdateWishHandler", "wish updated successfully", map[string]any{
		"wish_id": id,
		"user_id": user.ID,
	})
}

// DeleteWishHandler handles DELETE /wishes/:id. The deleted wish, as
// loaded by the ownership guard, is returned to the caller.
func (h *WishesHandler) DeleteWishHandler(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		return
	}

	wish, err := h.service.CheckOwner(c.Request.Context(), id, user.ID)
	if err != nil {
		helpers.HandleServiceError(c, "DeleteWishHandler", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		helpers.HandleServiceError(c, "DeleteWishHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, wish, "wish deleted successfully")
	helpers.LogSuccess("DeleteWishHandler", "wish deleted successfully", map[string]any{
		"wish_id": id,
		"user_id": user.ID,
	})
}

// CopyWishHandler handles POST /wishes/:id/copy
func (h *WishesHandler) CopyWishHandler(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		return
	}

	clone, err := h.service.Copy(c.Request.Context(), id, user.ID)
	if err != nil {
		helpers.HandleServiceError(c, "CopyWishHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, clone, "wish copied successfully")
	helpers.LogSuccess("CopyWishHandler", "wish copied successfully", map[string]any{
		"source_wish_id": id,
		"new_wish_id":    clone.ID,
		"user_id":        user.ID,
	})
}
