package matching

import (
	"testing"
	"time"

	"homigo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mondaySchedule(slots ...models.AvailabilitySlot) models.WeeklyAvailability {
	return models.WeeklyAvailability{
		"Monday": {IsAvailable: true, Slots: slots},
	}
}

func TestResolveAvailabilityNotConfigured(t *testing.T) {
	p := &models.Provider{}
	av := ResolveAvailability(p, "2026-01-05", "10:00")
	assert.False(t, av.IsAvailable)
	assert.Equal(t, "Provider availability not configured", av.Reason)
}

func TestResolveAvailabilityNoConstraint(t *testing.T) {
	p := &models.Provider{WeeklyAvailability: mondaySchedule()}
	av := ResolveAvailability(p, "", "")
	assert.True(t, av.IsAvailable)
	assert.Empty(t, av.Reason)
	assert.Empty(t, av.AvailableSlots)
}

func TestResolveAvailabilityDateOnly(t *testing.T) {
	slot := models.AvailabilitySlot{StartTime: "09:00", EndTime: "17:00", IsActive: true}
	p := &models.Provider{WeeklyAvailability: mondaySchedule(slot)}

	// 2026-01-05 is a Monday.
	av := ResolveAvailability(p, "2026-01-05", "")
	require.True(t, av.IsAvailable)
	assert.Equal(t, []models.AvailabilitySlot{slot}, av.AvailableSlots)

	// 2026-01-04 is a Sunday with no schedule entry.
	av = ResolveAvailability(p, "2026-01-04", "")
	assert.False(t, av.IsAvailable)
	assert.Equal(t, "Not available on Sunday", av.Reason)
}

func TestResolveAvailabilityDayMarkedUnavailable(t *testing.T) {
	slot := models.AvailabilitySlot{StartTime: "09:00", EndTime: "17:00", IsActive: true}
	p := &models.Provider{
		WeeklyAvailability: models.WeeklyAvailability{
			"Monday": {IsAvailable: false, Slots: []models.AvailabilitySlot{slot}},
		},
	}
	av := ResolveAvailability(p, "2026-01-05", "10:00")
	assert.False(t, av.IsAvailable)
	assert.Equal(t, "Not available on Monday", av.Reason)
	// The day's configured slots are still surfaced for display.
	assert.Equal(t, []models.AvailabilitySlot{slot}, av.AvailableSlots)
}

func TestResolveAvailabilityTimeWithinSlot(t *testing.T) {
	slot := models.AvailabilitySlot{StartTime: "09:00", EndTime: "17:00", IsActive: true}
	p := &models.Provider{WeeklyAvailability: mondaySchedule(slot)}

	av := ResolveAvailability(p, "2026-01-05", "10:00")
	require.True(t, av.IsAvailable)
	assert.Contains(t, av.AvailableSlots, slot)
}

func TestResolveAvailabilityEndExclusiveBoundary(t *testing.T) {
	slot := models.AvailabilitySlot{StartTime: "09:00", EndTime: "17:00", IsActive: true}
	p := &models.Provider{WeeklyAvailability: mondaySchedule(slot)}

	av := ResolveAvailability(p, "2026-01-05", "17:00")
	assert.False(t, av.IsAvailable)
	assert.Equal(t, "Not available at 5:00 PM", av.Reason)
	// Active slots are still listed for display.
	assert.Contains(t, av.AvailableSlots, slot)
}

func TestResolveAvailabilityInvertedSlotNeverMatches(t *testing.T) {
	// A slot with start >= end can never satisfy the half-open interval.
	slot := models.AvailabilitySlot{StartTime: "17:00", EndTime: "09:00", IsActive: true}
	p := &models.Provider{WeeklyAvailability: mondaySchedule(slot)}

	for _, at := range []string{"08:00", "12:00", "17:00", "20:00"} {
		av := ResolveAvailability(p, "2026-01-05", at)
		assert.False(t, av.IsAvailable, "inverted slot matched at %s", at)
	}
}

func TestResolveAvailabilityInactiveSlotsIgnored(t *testing.T) {
	slot := models.AvailabilitySlot{StartTime: "09:00", EndTime: "17:00", IsActive: false}
	p := &models.Provider{WeeklyAvailability: mondaySchedule(slot)}

	av := ResolveAvailability(p, "2026-01-05", "10:00")
	assert.False(t, av.IsAvailable)
	assert.Empty(t, av.AvailableSlots)
}

func TestResolveAvailabilityMalformedTime(t *testing.T) {
	slot := models.AvailabilitySlot{StartTime: "00:00", EndTime: "23:59", IsActive: true}
	p := &models.Provider{WeeklyAvailability: mondaySchedule(slot)}

	av := ResolveAvailability(p, "2026-01-05", "25:99")
	assert.False(t, av.IsAvailable)
	assert.Equal(t, "Not available at 25:99", av.Reason)
}

func TestResolveAvailabilityMalformedDateDegrades(t *testing.T) {
	p := &models.Provider{WeeklyAvailability: mondaySchedule()}
	av := ResolveAvailability(p, "not-a-date", "")
	assert.True(t, av.IsAvailable)
}

func TestResolveAvailabilityTimeWithoutDateUsesToday(t *testing.T) {
	orig := now
	defer func() { now = orig }()
	// Pin "today" to Monday 2026-01-05.
	now = func() time.Time {
		return time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	}

	slot := models.AvailabilitySlot{StartTime: "09:00", EndTime: "17:00", IsActive: true}
	p := &models.Provider{WeeklyAvailability: mondaySchedule(slot)}

	av := ResolveAvailability(p, "", "10:00")
	assert.True(t, av.IsAvailable)

	av = ResolveAvailability(p, "", "18:30")
	assert.False(t, av.IsAvailable)
	assert.Equal(t, "Not available at 6:30 PM", av.Reason)
}

func TestFormatClock12h(t *testing.T) {
	assert.Equal(t, "5:00 PM", formatClock12h("17:00"))
	assert.Equal(t, "12:00 AM", formatClock12h("00:00"))
	assert.Equal(t, "12:30 PM", formatClock12h("12:30"))
	assert.Equal(t, "9:05 AM", formatClock12h("09:05"))
	assert.Equal(t, "garbage", formatClock12h("garbage"))
}
