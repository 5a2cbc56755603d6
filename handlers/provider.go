package handlers

import (
	"net/http"

	"homigo/middleware"
	"homigo/models"
	"homigo/services/matching"
	"homigo/services/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes provider account and profile endpoints.
type ProviderHandler struct {
	Service provider.ProviderService
	Logger  *zap.Logger
}

func NewProviderHandler(svc provider.ProviderService, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{Service: svc, Logger: logger}
}

// RegisterProviderHandler handles POST /api/providers/register.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	var input models.ProviderRegistration
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	prov, token, err := h.Service.Register(input)
	if err != nil {
		h.Logger.Warn("RegisterProviderHandler: registration failed", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{
			"error":   "registration failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"provider": prov, "token": token})
}

// AuthenticateProviderHandler handles POST /api/providers/login.
func (h *ProviderHandler) AuthenticateProviderHandler(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	prov, token, err := h.Service.Authenticate(body.Email, body.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "authentication failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"provider": prov, "token": token})
}

// GetProviderByIDHandler handles GET /api/providers/id/:id.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	id := c.Param("id")
	prov, err := h.Service.GetProvider(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "provider not found",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, prov)
}

// GetProviderAvailabilityHandler handles GET /api/providers/:id/availability.
// Query parameters date ("2006-01-02") and time ("HH:MM") are both optional.
func (h *ProviderHandler) GetProviderAvailabilityHandler(c *gin.Context) {
	id := c.Param("id")
	prov, err := h.Service.GetProvider(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "provider not found",
			"message": err.Error(),
		})
		return
	}

	availability := matching.ResolveAvailability(prov, c.Query("date"), c.Query("time"))
	c.JSON(http.StatusOK, availability)
}

// UpdateWeeklyAvailabilityHandler handles PUT /api/providers/availability.
// The schedule being replaced belongs to the authenticated provider.
func (h *ProviderHandler) UpdateWeeklyAvailabilityHandler(c *gin.Context) {
	providerID := c.GetString(middleware.ContextProviderIDKey)
	if providerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var weekly models.WeeklyAvailability
	if err := c.ShouldBindJSON(&weekly); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	if err := h.Service.UpdateWeeklyAvailability(providerID, weekly); err != nil {
		h.Logger.Error("UpdateWeeklyAvailabilityHandler: update failed",
			zap.String("providerId", providerID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "failed to update availability",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
