package matching

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	providerRepo "homigo/database/repository/provider"
	"homigo/models"
	"homigo/utils"

	"go.uber.org/zap"
)

// DefaultSearchRadiusKm applies when a query carries no radius.
const DefaultSearchRadiusKm = 30

// ExpandedSearchRadiusKm is the automatic retry radius when a narrower
// coordinate search yields no candidates.
const ExpandedSearchRadiusKm = 100

// MatchingService is the engine's sole entry point for the calling layer.
type MatchingService interface {
	FindAvailableProviders(query models.MatchQuery) (*models.MatchResult, error)
}

// DefaultMatchingService implements MatchingService against the provider
// store, with an optional redis result cache. Zero radius fields fall back
// to the package constants.
type DefaultMatchingService struct {
	ProviderRepo     providerRepo.ProviderRepository
	CacheClient      ResultCache
	CacheTTL         time.Duration
	DefaultRadiusKm  float64
	ExpandedRadiusKm float64
}

func (s *DefaultMatchingService) defaultRadius() float64 {
	if s.DefaultRadiusKm > 0 {
		return s.DefaultRadiusKm
	}
	return DefaultSearchRadiusKm
}

func (s *DefaultMatchingService) expandedRadius() float64 {
	if s.ExpandedRadiusKm > 0 {
		return s.ExpandedRadiusKm
	}
	return ExpandedSearchRadiusKm
}

// candidate pairs a store document with its enrichment and eligibility output.
type candidate struct {
	provider   models.Provider
	distanceKm *float64
	price      string
	experience string
}

// FindAvailableProviders fetches candidates for the requested service,
// applies the eligibility cascade (with a single 100 km expansion retry),
// resolves availability per survivor, and returns the partitioned, sorted
// result. Calling it twice against unchanged store state yields identical
// ordering and partitioning.
func (s *DefaultMatchingService) FindAvailableProviders(query models.MatchQuery) (*models.MatchResult, error) {
	logger := utils.GetLogger()

	if query.ServiceID == "" {
		return nil, NewMatchError("service id is required")
	}
	radius := query.RadiusKm
	if radius <= 0 {
		radius = s.defaultRadius()
	}

	if cached := s.cachedResult(query, radius); cached != nil {
		return cached, nil
	}

	survivors, err := s.eligibleCandidates(query, radius)
	if err != nil {
		return nil, err
	}

	expanded := false
	effectiveRadius := radius
	if len(survivors) == 0 && query.Location.Valid() && radius < s.expandedRadius() {
		logger.Debug("No providers in radius, expanding search",
			zap.String("serviceId", query.ServiceID),
			zap.Float64("radiusKm", radius))
		retry, err := s.eligibleCandidates(query, s.expandedRadius())
		if err != nil {
			return nil, err
		}
		if len(retry) > 0 {
			survivors = retry
			expanded = true
			effectiveRadius = s.expandedRadius()
		}
	}

	result := &models.MatchResult{
		Available:         []models.MatchedProvider{},
		Unavailable:       []models.MatchedProvider{},
		ExpandedSearch:    expanded,
		EffectiveRadiusKm: effectiveRadius,
	}

	// Availability is a per-provider sub-fetch; checks are independent, so
	// fan out. One provider's failure never aborts the whole query.
	type checked struct {
		match     models.MatchedProvider
		available bool
	}
	resultsCh := make(chan checked, len(survivors))
	var wg sync.WaitGroup
	for _, c := range survivors {
		wg.Add(1)
		go func(c candidate) {
			defer wg.Done()
			av := s.checkAvailability(c.provider, query)
			match := models.MatchedProvider{
				ProviderID:        c.provider.ID,
				Name:              c.provider.Name,
				Phone:             c.provider.Phone,
				City:              c.provider.ServiceArea.City,
				DistanceKm:        c.distanceKm,
				FormattedPrice:    c.price,
				ServiceExperience: c.experience,
			}
			if !av.IsAvailable {
				match.UnavailabilityReason = av.Reason
				match.AvailableTimeSlots = av.AvailableSlots
			}
			resultsCh <- checked{match: match, available: av.IsAvailable}
		}(c)
	}
	wg.Wait()
	close(resultsCh)

	for r := range resultsCh {
		if r.available {
			result.Available = append(result.Available, r.match)
		} else {
			result.Unavailable = append(result.Unavailable, r.match)
		}
	}

	sortMatches(result.Available)
	sortMatches(result.Unavailable)

	s.storeResult(query, radius, result)
	return result, nil
}

// eligibleCandidates fetches active providers offering the service, enriches
// them with service-specific display fields, and keeps those passing the
// eligibility cascade at the given radius.
func (s *DefaultMatchingService) eligibleCandidates(query models.MatchQuery, radiusKm float64) ([]candidate, error) {
	providers, err := s.ProviderRepo.FindActiveOfferingService(query.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load providers for service %s: %w", query.ServiceID, err)
	}

	var survivors []candidate
	for _, p := range providers {
		elig := EvaluateEligibility(&p, query.Location, radiusKm, query.LocationText)
		if !elig.Included {
			continue
		}
		offering, ok := p.FindOffering(query.ServiceID)
		if !ok {
			// Store filter already guarantees the offering; guard anyway.
			continue
		}
		survivors = append(survivors, candidate{
			provider:   p,
			distanceKm: elig.DistanceKm,
			price:      formatPrice(offering.CustomCost),
			experience: offering.Experience,
		})
	}
	return survivors, nil
}

// checkAvailability loads the provider's schedule and resolves it against
// the query's date/time. Store failures and panics degrade to an
// "Error checking availability" verdict for that provider only.
func (s *DefaultMatchingService) checkAvailability(p models.Provider, query models.MatchQuery) (av Availability) {
	defer func() {
		if r := recover(); r != nil {
			utils.GetLogger().Error("availability check panicked",
				zap.String("providerId", p.ID), zap.Any("panic", r))
			av = Availability{Reason: "Error checking availability"}
		}
	}()

	full, err := s.ProviderRepo.GetByID(p.ID)
	if err != nil || full == nil {
		if err != nil {
			utils.GetLogger().Warn("failed to load provider schedule",
				zap.String("providerId", p.ID), zap.Error(err))
		}
		return Availability{Reason: "Error checking availability"}
	}
	return ResolveAvailability(full, query.Date, query.Time)
}

// sortMatches orders providers with a numeric distance first (ascending),
// then providers without one, tie-broken by case-insensitive name.
func sortMatches(matches []models.MatchedProvider) {
	sort.SliceStable(matches, func(i, j int) bool {
		di, dj := matches[i].DistanceKm, matches[j].DistanceKm
		switch {
		case di != nil && dj != nil:
			if *di != *dj {
				return *di < *dj
			}
		case di != nil:
			return true
		case dj != nil:
			return false
		}
		return strings.ToLower(matches[i].Name) < strings.ToLower(matches[j].Name)
	})
}

// formatPrice renders a provider's custom cost in the local currency unit.
func formatPrice(cost float64) string {
	if cost <= 0 {
		return ""
	}
	return fmt.Sprintf("₹%.0f", cost)
}
