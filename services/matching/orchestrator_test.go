package matching

import (
	"errors"
	"testing"

	providerRepo "homigo/database/repository/provider"
	"homigo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeProviderRepo is an in-memory ProviderRepository for orchestrator tests.
type fakeProviderRepo struct {
	providers    []models.Provider
	fetchErr     error
	failSchedule map[string]bool
}

var _ providerRepo.ProviderRepository = (*fakeProviderRepo)(nil)

func (f *fakeProviderRepo) GetByID(id string) (*models.Provider, error) {
	if f.failSchedule[id] {
		return nil, errors.New("store down")
	}
	for _, p := range f.providers {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProviderRepo) GetByEmail(email string) (*models.Provider, error) {
	for _, p := range f.providers {
		if p.Email == email {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProviderRepo) FindActiveOfferingService(serviceID string) ([]models.Provider, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	var out []models.Provider
	for _, p := range f.providers {
		if !p.Active {
			continue
		}
		if _, ok := p.FindOffering(serviceID); ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProviderRepo) Create(p *models.Provider) error                { return nil }
func (f *fakeProviderRepo) Update(p *models.Provider) error                { return nil }
func (f *fakeProviderRepo) UpdateWithDocument(id string, doc bson.M) error { return nil }
func (f *fakeProviderRepo) Delete(id string) error                         { return nil }

func testOffering(serviceID string, cost float64) []models.CategoryOffering {
	return []models.CategoryOffering{
		{CategoryID: "cat-1", Services: []models.OfferedService{
			{ServiceID: serviceID, CustomCost: cost, Experience: "5 years"},
		}},
	}
}

func mondayProvider(id, name string, lat, lng float64) models.Provider {
	return models.Provider{
		ID:              id,
		Name:            name,
		Active:          true,
		ServicesOffered: testOffering("svc-1", 1200),
		ServiceArea: models.ServiceArea{
			City:     "Pune",
			Location: models.NewGeoPoint(lat, lng),
		},
		WeeklyAvailability: mondaySchedule(
			models.AvailabilitySlot{StartTime: "09:00", EndTime: "17:00", IsActive: true},
		),
	}
}

func TestFindAvailableProvidersPartitionAndSort(t *testing.T) {
	// User in Pune; A ~5.1 km away, B ~12.3 km away, C has no coordinates
	// but a large named area (sentinel distance 25).
	a := mondayProvider("a", "Arjun Electricals", 18.5663, 73.8567)
	b := mondayProvider("b", "Bright Plumbing", 18.6310, 73.8567)
	b.WeeklyAvailability = nil
	c := models.Provider{
		ID:              "c",
		Name:            "City Wide Repairs",
		Active:          true,
		ServicesOffered: testOffering("svc-1", 900),
		ServiceArea:     models.ServiceArea{City: "Pune"},
		NamedServiceAreas: []models.NamedServiceArea{
			{Name: "Metro Region", RadiusKm: 35},
		},
		WeeklyAvailability: mondaySchedule(
			models.AvailabilitySlot{StartTime: "09:00", EndTime: "17:00", IsActive: true},
		),
	}

	repo := &fakeProviderRepo{providers: []models.Provider{c, b, a}}
	svc := &DefaultMatchingService{ProviderRepo: repo}

	result, err := svc.FindAvailableProviders(models.MatchQuery{
		ServiceID: "svc-1",
		Location:  models.NewGeoPoint(18.5204, 73.8567),
		Date:      "2026-01-05", // a Monday
		Time:      "10:00",
	})
	require.NoError(t, err)

	require.Len(t, result.Available, 2)
	assert.Equal(t, "a", result.Available[0].ProviderID)
	assert.Equal(t, "c", result.Available[1].ProviderID)
	assert.InDelta(t, 5.1, *result.Available[0].DistanceKm, 0.3)
	assert.Equal(t, 25.0, *result.Available[1].DistanceKm)
	assert.Equal(t, "₹1200", result.Available[0].FormattedPrice)
	assert.Equal(t, "5 years", result.Available[0].ServiceExperience)

	require.Len(t, result.Unavailable, 1)
	assert.Equal(t, "b", result.Unavailable[0].ProviderID)
	assert.Equal(t, "Provider availability not configured", result.Unavailable[0].UnavailabilityReason)

	assert.False(t, result.ExpandedSearch)
	assert.Equal(t, 30.0, result.EffectiveRadiusKm)
}

func TestSortMatchesNilDistanceLast(t *testing.T) {
	d1 := 12.3
	d2 := 5.1
	matches := []models.MatchedProvider{
		{ProviderID: "x", Name: "Zeta"},
		{ProviderID: "y", Name: "Alpha", DistanceKm: &d1},
		{ProviderID: "z", Name: "beta", DistanceKm: &d2},
	}
	sortMatches(matches)
	assert.Equal(t, []string{"z", "y", "x"},
		[]string{matches[0].ProviderID, matches[1].ProviderID, matches[2].ProviderID})
}

func TestSortMatchesNameTieBreak(t *testing.T) {
	matches := []models.MatchedProvider{
		{ProviderID: "1", Name: "delta"},
		{ProviderID: "2", Name: "Charlie"},
	}
	sortMatches(matches)
	assert.Equal(t, "2", matches[0].ProviderID)
}

func TestFindAvailableProvidersExpandsRadius(t *testing.T) {
	// ~45 km out: beyond the 30 km default but inside the 100 km retry.
	far := mondayProvider("far", "Faraway Fixers", 18.9251, 73.8567)
	repo := &fakeProviderRepo{providers: []models.Provider{far}}
	svc := &DefaultMatchingService{ProviderRepo: repo}

	result, err := svc.FindAvailableProviders(models.MatchQuery{
		ServiceID: "svc-1",
		Location:  models.NewGeoPoint(18.5204, 73.8567),
		RadiusKm:  30,
	})
	require.NoError(t, err)

	assert.True(t, result.ExpandedSearch)
	assert.Equal(t, 100.0, result.EffectiveRadiusKm)
	require.Len(t, result.Available, 1)
	assert.InDelta(t, 45, *result.Available[0].DistanceKm, 0.5)
}

func TestFindAvailableProvidersConfiguredRadii(t *testing.T) {
	// ~45 km out.
	far := mondayProvider("far", "Faraway Fixers", 18.9251, 73.8567)
	repo := &fakeProviderRepo{providers: []models.Provider{far}}

	// A wider configured default admits the provider without expansion.
	svc := &DefaultMatchingService{ProviderRepo: repo, DefaultRadiusKm: 60}
	result, err := svc.FindAvailableProviders(models.MatchQuery{
		ServiceID: "svc-1",
		Location:  models.NewGeoPoint(18.5204, 73.8567),
	})
	require.NoError(t, err)
	assert.False(t, result.ExpandedSearch)
	assert.Equal(t, 60.0, result.EffectiveRadiusKm)
	require.Len(t, result.Available, 1)

	// A narrower configured expansion ceiling keeps the provider out.
	svc = &DefaultMatchingService{ProviderRepo: repo, ExpandedRadiusKm: 40}
	result, err = svc.FindAvailableProviders(models.MatchQuery{
		ServiceID: "svc-1",
		Location:  models.NewGeoPoint(18.5204, 73.8567),
		RadiusKm:  30,
	})
	require.NoError(t, err)
	assert.False(t, result.ExpandedSearch)
	assert.Empty(t, result.Available)
}

func TestFindAvailableProvidersNoExpansionWithoutLocation(t *testing.T) {
	far := mondayProvider("far", "Faraway Fixers", 18.9251, 73.8567)
	repo := &fakeProviderRepo{providers: []models.Provider{far}}
	svc := &DefaultMatchingService{ProviderRepo: repo}

	result, err := svc.FindAvailableProviders(models.MatchQuery{ServiceID: "svc-1"})
	require.NoError(t, err)
	assert.False(t, result.ExpandedSearch)
	assert.Empty(t, result.Available)
	assert.Empty(t, result.Unavailable)
}

func TestFindAvailableProvidersScheduleFetchErrorContained(t *testing.T) {
	ok := mondayProvider("ok", "Okay Services", 18.5663, 73.8567)
	broken := mondayProvider("broken", "Broken Records", 18.5663, 73.8567)
	repo := &fakeProviderRepo{
		providers:    []models.Provider{ok, broken},
		failSchedule: map[string]bool{"broken": true},
	}
	svc := &DefaultMatchingService{ProviderRepo: repo}

	result, err := svc.FindAvailableProviders(models.MatchQuery{
		ServiceID: "svc-1",
		Location:  models.NewGeoPoint(18.5204, 73.8567),
		Date:      "2026-01-05",
	})
	require.NoError(t, err)

	require.Len(t, result.Available, 1)
	assert.Equal(t, "ok", result.Available[0].ProviderID)
	require.Len(t, result.Unavailable, 1)
	assert.Equal(t, "broken", result.Unavailable[0].ProviderID)
	assert.Equal(t, "Error checking availability", result.Unavailable[0].UnavailabilityReason)
}

func TestFindAvailableProvidersStoreFailure(t *testing.T) {
	repo := &fakeProviderRepo{fetchErr: errors.New("connection refused")}
	svc := &DefaultMatchingService{ProviderRepo: repo}

	_, err := svc.FindAvailableProviders(models.MatchQuery{
		ServiceID: "svc-1",
		Location:  models.NewGeoPoint(18.5204, 73.8567),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load providers")
}

func TestFindAvailableProvidersRequiresServiceID(t *testing.T) {
	svc := &DefaultMatchingService{ProviderRepo: &fakeProviderRepo{}}
	_, err := svc.FindAvailableProviders(models.MatchQuery{})
	require.Error(t, err)
	var matchErr *MatchError
	assert.ErrorAs(t, err, &matchErr)
}

func TestFindAvailableProvidersIdempotent(t *testing.T) {
	a := mondayProvider("a", "Arjun Electricals", 18.5663, 73.8567)
	b := mondayProvider("b", "Bright Plumbing", 18.6310, 73.8567)
	repo := &fakeProviderRepo{providers: []models.Provider{b, a}}
	svc := &DefaultMatchingService{ProviderRepo: repo}

	query := models.MatchQuery{
		ServiceID: "svc-1",
		Location:  models.NewGeoPoint(18.5204, 73.8567),
		Date:      "2026-01-05",
		Time:      "10:00",
	}
	first, err := svc.FindAvailableProviders(query)
	require.NoError(t, err)
	second, err := svc.FindAvailableProviders(query)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
