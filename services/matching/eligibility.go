package matching

import (
	"strings"

	"homigo/models"
)

// Sentinel distances assigned to matches that carry no precise distance.
// They exist only to order coordinate-precise matches ahead of fuzzy ones
// (10 < 25 < 40).
const (
	regionalMatchDistanceKm  = 10
	largeAreaMatchDistanceKm = 25
	stateMatchDistanceKm     = 40
)

// Effective-radius adjustments applied during the coordinate pass.
const (
	textSearchMinRadiusKm = 50 // primary-area floor when a place name accompanies coordinates
	namedAreaPadKm        = 10 // named-area pad without a place name
	namedAreaTextPadKm    = 30 // named-area pad with a place name
)

// Eligibility is the outcome of the geographic inclusion decision for one
// provider. DistanceKm is nil when the provider is excluded.
type Eligibility struct {
	Included   bool
	DistanceKm *float64
}

// EvaluateEligibility decides whether a provider is geographically reachable
// for a query. The cascade runs in strict precedence order and the first
// matching step wins; the order determines which distance a provider is
// ranked with, so it must not be reordered.
//
//  1. Regional text match against the provider's city/state/named areas.
//  2. Coordinate distance against the primary and named area points.
//  3. Large named-area fallback (any area with radius >= 30 km).
//  4. State-keyword fallback from the gazetteer.
func EvaluateEligibility(p *models.Provider, userLoc *models.GeoPoint, searchRadiusKm float64, locationText string) Eligibility {
	included := false
	var distance *float64

	setDistance := func(d float64) {
		if distance == nil || d < *distance {
			v := d
			distance = &v
		}
	}

	// Step 1: regional text match.
	if locationText != "" {
		lowerText := strings.ToLower(locationText)
		queryCity := ExtractCityName(lowerText)

		if matchesCityText(p.ServiceArea.City, queryCity) {
			included = true
		}
		if !included && p.ServiceArea.State != "" {
			state := strings.ToLower(p.ServiceArea.State)
			if strings.Contains(state, lowerText) || strings.Contains(lowerText, state) {
				included = true
			}
		}
		if !included {
			for _, area := range p.NamedServiceAreas {
				if matchesCityText(area.Name, queryCity) {
					included = true
					break
				}
			}
		}
		if included {
			setDistance(regionalMatchDistanceKm)
		}
	}

	// Step 2: coordinate-distance match.
	if !included && userLoc.Valid() {
		if p.ServiceArea.Location.Valid() {
			d := Haversine(userLoc.Lat(), userLoc.Lng(), p.ServiceArea.Location.Lat(), p.ServiceArea.Location.Lng())
			effRadius := searchRadiusKm
			if locationText != "" && effRadius < textSearchMinRadiusKm {
				effRadius = textSearchMinRadiusKm
			}
			if d <= effRadius {
				included = true
				setDistance(d)
			}
		}
		for _, area := range p.NamedServiceAreas {
			if !area.Location.Valid() {
				continue
			}
			d := Haversine(userLoc.Lat(), userLoc.Lng(), area.Location.Lat(), area.Location.Lng())
			pad := float64(namedAreaPadKm)
			if locationText != "" {
				pad = namedAreaTextPadKm
			}
			effRadius := area.EffectiveRadiusKm() + pad
			if searchRadiusKm > effRadius {
				effRadius = searchRadiusKm
			}
			if d <= effRadius {
				included = true
				setDistance(d)
			}
		}
	}

	// Step 3: large-area fallback.
	if !included {
		for _, area := range p.NamedServiceAreas {
			if area.EffectiveRadiusKm() >= 30 {
				included = true
				setDistance(largeAreaMatchDistanceKm)
				break
			}
		}
	}

	// Step 4: state-keyword fallback.
	if !included && locationText != "" {
		queryKeywords := ExtractStateKeywords(locationText)
		providerKeywords := ExtractStateKeywords(p.ServiceArea.State)
		if keywordsOverlap(queryKeywords, providerKeywords) {
			included = true
			setDistance(stateMatchDistanceKm)
		}
	}

	if !included {
		return Eligibility{}
	}
	return Eligibility{Included: true, DistanceKm: distance}
}

// matchesCityText applies the lenient city comparison: substring containment
// in either direction, or the fuzzy SameCity rule. Empty inputs never match.
func matchesCityText(candidate, queryCity string) bool {
	candidate = strings.ToLower(strings.TrimSpace(candidate))
	if candidate == "" || queryCity == "" {
		return false
	}
	if strings.Contains(candidate, queryCity) || strings.Contains(queryCity, candidate) {
		return true
	}
	return SameCity(candidate, queryCity)
}

// keywordsOverlap reports whether any keyword from one list is a substring
// of (or contains) any keyword from the other.
func keywordsOverlap(a, b []string) bool {
	for _, ka := range a {
		for _, kb := range b {
			if strings.Contains(ka, kb) || strings.Contains(kb, ka) {
				return true
			}
		}
	}
	return false
}
