package provider

import "homigo/models"

// ProviderService defines provider account and profile operations.
type ProviderService interface {
	// Register creates a provider account and returns the stored profile
	// with a signed auth token.
	Register(input models.ProviderRegistration) (*models.Provider, string, error)
	// GetProvider retrieves a provider profile by id.
	GetProvider(id string) (*models.Provider, error)
	// Authenticate verifies credentials and returns the profile with a token.
	Authenticate(email, password string) (*models.Provider, string, error)
	// UpdateWeeklyAvailability replaces a provider's weekly schedule.
	UpdateWeeklyAvailability(id string, weekly models.WeeklyAvailability) error
}
