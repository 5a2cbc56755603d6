package catalogRepo

import "homigo/models"

// CatalogRepository defines methods for service-catalog data access.
type CatalogRepository interface {
	// GetServiceByID retrieves a catalog service by id. Returns nil when absent.
	GetServiceByID(id string) (*models.CatalogService, error)
	// ListServices retrieves all catalog services.
	ListServices() ([]models.CatalogService, error)
	// ListServicesByCategory retrieves catalog services under a category.
	ListServicesByCategory(categoryID string) ([]models.CatalogService, error)
	// ListCategories retrieves all categories.
	ListCategories() ([]models.Category, error)
	// CreateService inserts a new catalog service.
	CreateService(svc *models.CatalogService) error
}
