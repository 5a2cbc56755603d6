package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineIdentity(t *testing.T) {
	assert.Equal(t, 0.0, Haversine(18.5204, 73.8567, 18.5204, 73.8567))
}

func TestHaversineSymmetry(t *testing.T) {
	d1 := Haversine(19.0760, 72.8777, 18.5204, 73.8567)
	d2 := Haversine(18.5204, 73.8567, 19.0760, 72.8777)
	assert.Equal(t, d1, d2)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Mumbai to Pune is roughly 120 km great-circle.
	d := Haversine(19.0760, 72.8777, 18.5204, 73.8567)
	assert.InDelta(t, 120, d, 5)
}

func TestHaversinePropagatesNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Haversine(math.NaN(), 72.8777, 18.5204, 73.8567)))
}
