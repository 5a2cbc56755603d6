package providerRepo

import (
	"homigo/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// GetByID retrieves a provider by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Provider, error)
	// GetByEmail retrieves a provider by its email address. Returns nil when absent.
	GetByEmail(email string) (*models.Provider, error)
	// FindActiveOfferingService returns active providers whose offerings
	// include the given catalog service id. Candidate documents omit the
	// weekly schedule; load it per provider via GetByID.
	FindActiveOfferingService(serviceID string) ([]models.Provider, error)
	// Create inserts a new provider record.
	Create(provider *models.Provider) error
	// Update replaces an existing provider record.
	Update(provider *models.Provider) error
	// UpdateWithDocument patches a provider document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Delete removes a provider record by its ID.
	Delete(id string) error
}
