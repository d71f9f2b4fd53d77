package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	users "github.com/MedusCode/kupipodariday-backend/internal/userService"
	"github.com/MedusCode/kupipodariday-backend/services/app/helpers"
	"github.com/MedusCode/kupipodariday-backend/utils"
)

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// SignupHandler handles POST /signup
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	var req helpers.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SignupHandler", err)
		return
	}

	user, token, err := h.service.Signup(c.Request.Context(), users.RegisterInput{
		Username: req.Username,
		About:    req.About,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		helpers.HandleServiceError(c, "SignupHandler", err)
		return
	}

	resp := helpers.SignupResponse{
		ID:          user.ID,
		Username:    user.Username,
		About:       user.About,
		Avatar:      user.Avatar,
		Email:       user.Email,
		AccessToken: token,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "user registered successfully")
	helpers.LogSuccess("SignupHandler", "user registered successfully", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
}

// SigninHandler handles POST /signin
func (h *AuthHandler) SigninHandler(c *gin.Context) {
	var req helpers.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SigninHandler", err)
		return
	}

	token, err := h.service.Signin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "SigninHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.SigninResponse{AccessToken: token}, "signed in successfully")
	helpers.LogSuccess("SigninHandler", "signed in successfully", map[string]any{
		"username": req.Username,
	})
}
