package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MedusCode/kupipodariday-backend/services/app/helpers"
	"github.com/MedusCode/kupipodariday-backend/utils"
)

type OffersHandler struct {
	service OfferService
}

func NewOffersHandler(service OfferService) *OffersHandler {
	return &OffersHandler{service: service}
}

// CreateOfferHandler handles POST /offers
func (h *OffersHandler) CreateOfferHandler(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req helpers.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateOfferHandler", err)
		return
	}

	offer, err := h.service.PlaceOffer(c.Request.Context(), req.ItemID, req.Amount, user.ID)
	if err != nil {
		helpers.HandleServiceError(c, "CreateOfferHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, offer, "offer placed successfully")
	helpers.LogSuccess("CreateOfferHandler", "offer placed successfully", map[string]any{
		"offer_id": offer.ID,
		"wish_id":  req.ItemID,
		"user_id":  user.ID,
		"amount":   req.Amount,
	})
}

// GetOffersHandler handles GET /offers
func (h *OffersHandler) GetOffersHandler(c *gin.Context) {
	found, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "GetOffersHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, found, "offers retrieved")
}

// GetOfferHandler handles GET /offers/:id
func (h *OffersHandler) GetOfferHandler(c *gin.Context) {
	id, ok := helpers.ParseIDParam(c, "id")
	if !ok {
		return
	}

	offer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		helpers.HandleServiceError(c, "GetOfferHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, offer, "offer retrieved")
}
