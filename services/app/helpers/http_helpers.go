package helpers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MedusCode/kupipodariday-backend/internal/apperrors"
	"github.com/MedusCode/kupipodariday-backend/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError translates a domain error into the HTTP response
// and logs the full wrapped chain, which never reaches the client.
func HandleServiceError(c *gin.Context, handlerName string, err error) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, message)
	utils.Error(handlerName+": "+message, map[string]any{
		"handler": handlerName,
		"error":   err.Error(),
	})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "you do not own this resource"
	case errors.Is(err, apperrors.ErrAlreadyFunded):
		return http.StatusConflict, "wish already has offers"
	case errors.Is(err, apperrors.ErrSelfCopy):
		return http.StatusConflict, "cannot copy your own wish"
	case errors.Is(err, apperrors.ErrWishReferenceInvalid):
		return http.StatusConflict, "referenced wish does not exist"
	case errors.Is(err, apperrors.ErrAlreadyExists):
		return http.StatusConflict, "user with this username or email already exists"
	case errors.Is(err, apperrors.ErrInvalidAmount):
		return http.StatusBadRequest, "offer amount must be positive"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid username or password"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ParseIDParam reads a positive numeric :id path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
