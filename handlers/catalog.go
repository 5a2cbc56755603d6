package handlers

import (
	"net/http"

	catalogRepo "homigo/database/repository/catalog"
	"homigo/models"
	"homigo/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogHandler serves the service catalog reference data.
type CatalogHandler struct {
	Repo   catalogRepo.CatalogRepository
	Logger *zap.Logger
}

func NewCatalogHandler(repo catalogRepo.CatalogRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Repo: repo, Logger: logger}
}

// ListServices handles GET /api/catalog/services. An optional category
// query parameter narrows the listing.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	categoryID := c.Query("category")

	var err error
	var services interface{}
	if categoryID != "" {
		services, err = h.Repo.ListServicesByCategory(categoryID)
	} else {
		services, err = h.Repo.ListServices()
	}
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch services",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService handles GET /api/catalog/services/:id.
func (h *CatalogHandler) GetService(c *gin.Context) {
	id := c.Param("id")
	svc, err := h.Repo.GetServiceByID(id)
	if err != nil {
		h.Logger.Error("GetService: failed to fetch service", zap.String("serviceId", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch service",
			"message": err.Error(),
		})
		return
	}
	if svc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateService handles POST /api/catalog/services. The id is generated
// when the payload omits one.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var svc models.CatalogService
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service payload", err.Error())
		return
	}
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	if err := h.Repo.CreateService(&svc); err != nil {
		h.Logger.Error("CreateService: failed to create service", zap.String("name", svc.Name), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create service", err.Error())
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// ListCategories handles GET /api/catalog/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.Repo.ListCategories()
	if err != nil {
		h.Logger.Error("ListCategories: failed to fetch categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch categories",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, categories)
}
