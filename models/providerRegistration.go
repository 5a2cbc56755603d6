package models

// ProviderRegistration is the payload for provider signup.
type ProviderRegistration struct {
	Name              string             `json:"name" binding:"required"`
	Email             string             `json:"email" binding:"required,email"`
	Phone             string             `json:"phone" binding:"required"`
	Password          string             `json:"password" binding:"required,min=8"`
	ServicesOffered   []CategoryOffering `json:"servicesOffered" binding:"required"`
	ServiceArea       ServiceArea        `json:"serviceArea" binding:"required"`
	NamedServiceAreas []NamedServiceArea `json:"namedServiceAreas,omitempty"`
}
