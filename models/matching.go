package models

// MatchQuery is the input to a provider search. Location and coordinates are
// optional; the calling layer is responsible for threading in any fallback
// location (the engine never reads ambient state).
type MatchQuery struct {
	ServiceID    string    `json:"serviceId"`
	LocationText string    `json:"location,omitempty"` // free-text place name
	Location     *GeoPoint `json:"coordinates,omitempty"`
	Date         string    `json:"date,omitempty"` // "2006-01-02"
	Time         string    `json:"time,omitempty"` // 24-hour "HH:MM"
	RadiusKm     float64   `json:"radiusKm,omitempty"`
}

// MatchedProvider is one candidate in a match result, carrying the display
// fields computed during enrichment. DistanceKm is nil when the provider was
// admitted without a usable distance.
type MatchedProvider struct {
	ProviderID           string             `json:"providerId"`
	Name                 string             `json:"name"`
	Phone                string             `json:"phone,omitempty"`
	City                 string             `json:"city,omitempty"`
	DistanceKm           *float64           `json:"distanceKm,omitempty"`
	FormattedPrice       string             `json:"formattedPrice,omitempty"`
	ServiceExperience    string             `json:"serviceExperience,omitempty"`
	UnavailabilityReason string             `json:"unavailabilityReason,omitempty"`
	AvailableTimeSlots   []AvailabilitySlot `json:"availableTimeSlots,omitempty"`
}

// MatchResult partitions candidates into available and unavailable lists,
// each sorted by ascending distance (nil-distance providers last), then by
// case-insensitive name. A provider appears in at most one partition.
type MatchResult struct {
	Available         []MatchedProvider `json:"available"`
	Unavailable       []MatchedProvider `json:"unavailable"`
	ExpandedSearch    bool              `json:"expandedSearch"`
	EffectiveRadiusKm float64           `json:"effectiveRadiusKm"`
}
