package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "github.com/MedusCode/kupipodariday-backend/internal/models"
	"github.com/MedusCode/kupipodariday-backend/services/app/helpers"
	"github.com/MedusCode/kupipodariday-backend/utils"
)

type UsersHandler struct {
	service UserService
	wishes  WishService
}

func NewUsersHandler(service UserService, wishes WishService) *UsersHandler {
	return &UsersHandler{service: service, wishes: wishes}
}

// GetMeHandler handles GET /users/me
func (h *UsersHandler) GetMeHandler(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "profile retrieved")
}

// UpdateMeHandler handles PATCH /users/me
func (h *UsersHandler) UpdateMeHandler(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var patch model.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		helpers.HandleBindError(c, "UpdateMeHandler", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), user.ID, patch)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateMeHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "profile updated successfully")
	helpers.LogSuccess("UpdateMeHandler", "profile updated successfully", map[string]any{
		"user_id": user.ID,
	})
}

// GetMyWishesHandler handles GET /users/me/wishes
func (h *UsersHandler) GetMyWishesHandler(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	found, err := h.wishes.GetByOwner(c.Request.Context(), user.ID)
	if err != nil {
		helpers.HandleServiceError(c, "GetMyWishesHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, found, "wishes retrieved")
}

// GetUserHandler handles GET /users/:username
func (h *UsersHandler) GetUserHandler(c *gin.Context) {
	username := c.Param("username")

	user, err := h.service.GetByUsername(c.Request.Context(), username)
	if err != nil {
		helpers.HandleServiceError(c, "GetUserHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "user retrieved")
}

// GetUserWishesHandler handles GET /users/:username/wishes
func (h *UsersHandler) GetUserWishesHandler(c *gin.Context) {
	username := c.Param("username")

	found, err := h.service.WishesOf(c.Request.Context(), username)
	if err != nil {
		helpers.HandleServiceError(c, "GetUserWishesHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, found, "wishes retrieved")
}

// FindUsersHandler handles POST /users/find
func (h *UsersHandler) FindUsersHandler(c *gin.Context) {
	var req helpers.SearchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "FindUsersHandler", err)
		return
	}

	found, err := h.service.Search(c.Request.Context(), req.Query)
	if err != nil {
		helpers.HandleServiceError(c, "FindUsersHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, found, "users retrieved")
}
