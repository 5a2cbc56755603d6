package provider

import (
	"fmt"
	"strings"
	"time"

	providerRepo "homigo/database/repository/provider"
	"homigo/models"
	"homigo/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authTokenTTL = 72 * time.Hour

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}

// Register creates a provider account: validates email uniqueness, hashes
// the password, assigns an id and stores the profile as active.
func (s *DefaultProviderService) Register(input models.ProviderRegistration) (*models.Provider, string, error) {
	logger := utils.GetLogger()

	email := strings.ToLower(strings.TrimSpace(input.Email))
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing provider: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("provider with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	prov := &models.Provider{
		ID:                uuid.NewString(),
		Name:              strings.TrimSpace(input.Name),
		Email:             email,
		Phone:             strings.TrimSpace(input.Phone),
		PasswordHash:      string(hash),
		Active:            true,
		ServicesOffered:   input.ServicesOffered,
		ServiceArea:       input.ServiceArea,
		NamedServiceAreas: input.NamedServiceAreas,
	}
	if err := s.Repo.Create(prov); err != nil {
		return nil, "", fmt.Errorf("failed to store provider: %w", err)
	}

	token, err := utils.GenerateToken(prov.ID, prov.Email, authTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue auth token: %w", err)
	}

	logger.Info("provider registered", zap.String("providerId", prov.ID))
	prov.PasswordHash = ""
	return prov, token, nil
}

// GetProvider retrieves a provider profile by id.
func (s *DefaultProviderService) GetProvider(id string) (*models.Provider, error) {
	prov, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	if prov == nil {
		return nil, fmt.Errorf("provider %s not found", id)
	}
	return prov, nil
}

// Authenticate verifies credentials and returns the profile with a token.
func (s *DefaultProviderService) Authenticate(email, password string) (*models.Provider, string, error) {
	prov, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch provider: %w", err)
	}
	if prov == nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(prov.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(prov.ID, prov.Email, authTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue auth token: %w", err)
	}
	prov.PasswordHash = ""
	return prov, token, nil
}

// UpdateWeeklyAvailability replaces a provider's weekly schedule.
func (s *DefaultProviderService) UpdateWeeklyAvailability(id string, weekly models.WeeklyAvailability) error {
	for day := range weekly {
		if !validWeekday(day) {
			return fmt.Errorf("invalid weekday name %q", day)
		}
	}
	if err := s.Repo.UpdateWithDocument(id, bson.M{"weeklyAvailability": weekly}); err != nil {
		return fmt.Errorf("failed to update weekly availability: %w", err)
	}
	return nil
}

func validWeekday(name string) bool {
	switch name {
	case "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday":
		return true
	}
	return false
}
