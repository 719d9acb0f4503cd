package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"quickfind/config"
	"quickfind/middleware"
	"quickfind/services/credit"
	"quickfind/services/quickfind"
	"quickfind/utils"

	"github.com/gin-gonic/gin"
)

// QuickFindHandler exposes the proximity matching and negotiation endpoints.
type QuickFindHandler struct {
	Service quickfind.Service
	Credits credit.Gate
}

// NewQuickFindHandler creates a new QuickFindHandler.
func NewQuickFindHandler(service quickfind.Service, credits credit.Gate) *QuickFindHandler {
	return &QuickFindHandler{Service: service, Credits: credits}
}

// SearchNearbyHandler handles GET /api/quickfind/nearby.
func (h *QuickFindHandler) SearchNearbyHandler(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid coordinate", "lat and lng must be numeric")
		return
	}

	radius := config.AppConfig.DefaultSearchRadiusKm
	if radius <= 0 {
		radius = 10
	}
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid radius", "radius must be a positive number")
			return
		}
		radius = parsed
	}

	var minRating float64
	if raw := c.Query("minRating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid minRating", "minRating must be numeric")
			return
		}
		minRating = parsed
	}

	accountID := c.GetString(middleware.ContextAccountID)
	if err := h.Credits.Charge(c.Request.Context(), accountID); err != nil {
		if errors.Is(err, credit.ErrInsufficientCredits) {
			utils.JSONError(c, http.StatusForbidden, "insufficient credits", "top up your account to keep searching")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "credit check failed", err.Error())
		return
	}

	candidates, err := h.Service.SearchNearby(c.Request.Context(), quickfind.SearchQuery{
		Lat:       lat,
		Lng:       lng,
		Category:  c.Query("category"),
		RadiusKm:  radius,
		MinRating: minRating,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "search failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"providers": candidates})
}

// RequestHandler handles POST /api/quickfind/request.
func (h *QuickFindHandler) RequestHandler(c *gin.Context) {
	var input struct {
		ProviderID string `json:"providerId" binding:"required"`
		Category   string `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	clientID := c.GetString(middleware.ContextAccountID)
	requestID, err := h.Service.Solicit(c.Request.Context(), clientID, input.ProviderID, input.Category)
	if err != nil {
		if errors.Is(err, quickfind.ErrProviderNotFound) {
			utils.JSONError(c, http.StatusNotFound, "provider not found", input.ProviderID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to dispatch request", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"requestId": requestID})
}

// RespondHandler handles POST /api/quickfind/respond.
func (h *QuickFindHandler) RespondHandler(c *gin.Context) {
	var input struct {
		RequestID string `json:"requestId" binding:"required"`
		Action    string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	providerID := c.GetString(middleware.ContextAccountID)
	err := h.Service.Respond(c.Request.Context(), providerID, input.RequestID, input.Action)
	if err != nil {
		switch {
		case errors.Is(err, quickfind.ErrInvalidAction), errors.Is(err, quickfind.ErrInvalidToken):
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		case errors.Is(err, quickfind.ErrProviderNotFound):
			utils.JSONError(c, http.StatusNotFound, "provider not found", providerID)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to process response", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ConfirmHandler handles POST /api/quickfind/confirm.
func (h *QuickFindHandler) ConfirmHandler(c *gin.Context) {
	var input struct {
		RequestID  string `json:"requestId" binding:"required"`
		ProviderID string `json:"providerId" binding:"required"`
		ServiceID  string `json:"serviceId"`
		Date       string `json:"date"`
		Time       string `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	accountID := c.GetString(middleware.ContextAccountID)
	if err := h.Credits.Charge(c.Request.Context(), accountID); err != nil {
		if errors.Is(err, credit.ErrInsufficientCredits) {
			utils.JSONError(c, http.StatusForbidden, "insufficient credits", "top up your account to confirm bookings")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "credit check failed", err.Error())
		return
	}

	booking, err := h.Service.Confirm(c.Request.Context(), input.RequestID, input.ProviderID, quickfind.ConfirmRequest{
		ServiceID: input.ServiceID,
		Date:      input.Date,
		Time:      input.Time,
	})
	if err != nil {
		switch {
		case errors.Is(err, quickfind.ErrInvalidToken):
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		case errors.Is(err, quickfind.ErrProviderNotFound), errors.Is(err, quickfind.ErrServiceNotFound):
			utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to confirm booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookingId": booking.ID})
}
