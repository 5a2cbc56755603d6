package handlers

import (
	"net/http"

	"homigo/middleware"
	"homigo/models"
	"homigo/services/matching"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler exposes the provider matching engine over HTTP.
type SearchHandler struct {
	MatchingSvc matching.MatchingService
	Logger      *zap.Logger
}

func NewSearchHandler(svc matching.MatchingService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{MatchingSvc: svc, Logger: logger}
}

type searchRequest struct {
	ServiceID string   `json:"serviceId" binding:"required"`
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	RadiusKm  float64  `json:"radiusKm"`
}

// FindProviders handles POST /api/search/providers.
func (h *SearchHandler) FindProviders(c *gin.Context) {
	var body searchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Warn("FindProviders: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	query := models.MatchQuery{
		ServiceID:    body.ServiceID,
		LocationText: body.Location,
		Date:         body.Date,
		Time:         body.Time,
		RadiusKm:     body.RadiusKm,
	}
	if body.Latitude != nil && body.Longitude != nil {
		query.Location = models.NewGeoPoint(*body.Latitude, *body.Longitude)
	} else {
		// Fall back to the location resolved by the geolocation middleware.
		// Threaded explicitly here; the engine only sees the query.
		query.Location = middleware.ClientGeoFromContext(c)
	}

	result, err := h.MatchingSvc.FindAvailableProviders(query)
	if err != nil {
		if _, ok := err.(*matching.MatchError); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid search",
				"message": err.Error(),
			})
			return
		}
		h.Logger.Error("FindProviders: matching failed",
			zap.String("serviceId", body.ServiceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to load providers",
			"message": "could not complete provider search, please try again",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
