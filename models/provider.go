package models

import "time"

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoPoint from a latitude/longitude pair.
func NewGeoPoint(lat, lng float64) *GeoPoint {
	return &GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Lat returns the latitude, or 0 if the point is malformed.
func (g *GeoPoint) Lat() float64 {
	if g == nil || len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[1]
}

// Lng returns the longitude, or 0 if the point is malformed.
func (g *GeoPoint) Lng() float64 {
	if g == nil || len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[0]
}

// Valid reports whether the point carries a usable coordinate pair.
func (g *GeoPoint) Valid() bool {
	return g != nil && len(g.Coordinates) >= 2
}

const (
	// DefaultServiceAreaRadiusKm applies when a provider's primary area has no radius set.
	DefaultServiceAreaRadiusKm = 20
	// DefaultNamedAreaRadiusKm applies when an additional named area has no radius set.
	DefaultNamedAreaRadiusKm = 10
)

// ServiceArea is a provider's primary declared coverage region.
type ServiceArea struct {
	RadiusKm float64   `bson:"radiusKm" json:"radiusKm"`
	City     string    `bson:"city" json:"city"`
	State    string    `bson:"state" json:"state"`
	Pincode  string    `bson:"pincode" json:"pincode,omitempty"`
	Location *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
}

// EffectiveRadiusKm returns the configured radius or the primary-area default.
func (a ServiceArea) EffectiveRadiusKm() float64 {
	if a.RadiusKm <= 0 {
		return DefaultServiceAreaRadiusKm
	}
	return a.RadiusKm
}

// NamedServiceArea is an additional named coverage point with its own radius.
type NamedServiceArea struct {
	Name     string    `bson:"name" json:"name"` // address or place name text
	Location *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	RadiusKm float64   `bson:"radiusKm" json:"radiusKm"`
}

// EffectiveRadiusKm returns the configured radius or the named-area default.
func (a NamedServiceArea) EffectiveRadiusKm() float64 {
	if a.RadiusKm <= 0 {
		return DefaultNamedAreaRadiusKm
	}
	return a.RadiusKm
}

// OfferedService ties a catalog service to a provider's own price and experience.
type OfferedService struct {
	ServiceID  string  `bson:"serviceId" json:"serviceId"`
	CustomCost float64 `bson:"customCost" json:"customCost"`
	Experience string  `bson:"experience" json:"experience,omitempty"` // e.g., "5 years"
}

// CategoryOffering groups a provider's offered services under a catalog category.
type CategoryOffering struct {
	CategoryID string           `bson:"categoryId" json:"categoryId"`
	Services   []OfferedService `bson:"services" json:"services"`
}

// AvailabilitySlot is one bookable window within a day. Times are 24-hour "HH:MM".
type AvailabilitySlot struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
	IsActive  bool   `bson:"isActive" json:"isActive"`
}

// DaySchedule holds one weekday's availability flag and its configured slots.
type DaySchedule struct {
	IsAvailable bool               `bson:"isAvailable" json:"isAvailable"`
	Slots       []AvailabilitySlot `bson:"slots" json:"slots"`
}

// WeeklyAvailability maps weekday names ("Sunday".."Saturday") to day schedules.
type WeeklyAvailability map[string]DaySchedule

// Provider is a registered service provider profile. The matching engine
// treats providers as read-only; mutation happens through profile management.
type Provider struct {
	ID                 string             `bson:"id" json:"id"`
	UserID             string             `bson:"userId" json:"userId,omitempty"`
	Name               string             `bson:"name" json:"name"`
	Email              string             `bson:"email" json:"email,omitempty"`
	Phone              string             `bson:"phone" json:"phone,omitempty"`
	PasswordHash       string             `bson:"passwordHash" json:"-"`
	Active             bool               `bson:"active" json:"active"`
	ServicesOffered    []CategoryOffering `bson:"servicesOffered" json:"servicesOffered,omitempty"`
	ServiceArea        ServiceArea        `bson:"serviceArea" json:"serviceArea"`
	NamedServiceAreas  []NamedServiceArea `bson:"namedServiceAreas,omitempty" json:"namedServiceAreas,omitempty"`
	WeeklyAvailability WeeklyAvailability `bson:"weeklyAvailability,omitempty" json:"weeklyAvailability,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt          time.Time          `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// FindOffering looks up the provider's offering entry for a catalog service id.
func (p *Provider) FindOffering(serviceID string) (OfferedService, bool) {
	for _, cat := range p.ServicesOffered {
		for _, svc := range cat.Services {
			if svc.ServiceID == serviceID {
				return svc, true
			}
		}
	}
	return OfferedService{}, false
}
