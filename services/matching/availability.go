package matching

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"homigo/models"
)

// now is stubbed in tests; the resolver needs the current weekday when a
// time is requested without a date.
var now = time.Now

// Availability is the outcome of resolving a provider's weekly schedule
// against a requested date/time.
type Availability struct {
	IsAvailable    bool                      `json:"isAvailable"`
	Reason         string                    `json:"reason,omitempty"`
	AvailableSlots []models.AvailabilitySlot `json:"availableSlots,omitempty"`
}

// ResolveAvailability decides whether a provider's weekly schedule permits a
// booking at the requested date/time. It is a pure function of the schedule
// and the query; nothing is persisted.
//
// Rules:
//   - no schedule configured: unavailable, "Provider availability not configured"
//   - neither date nor time: available, no constraint requested
//   - date only: available iff that weekday is enabled; slots are the day's
//     configured list
//   - time given: only active slots are scanned; a slot matches on the
//     half-open interval start <= t < end; all active slots are returned for
//     display regardless of match
//
// Malformed dates degrade to "no date constraint"; malformed times never
// match a slot.
func ResolveAvailability(p *models.Provider, date, timeStr string) Availability {
	if len(p.WeeklyAvailability) == 0 {
		return Availability{Reason: "Provider availability not configured"}
	}
	if date == "" && timeStr == "" {
		return Availability{IsAvailable: true}
	}

	weekday := ""
	if date != "" {
		if d, err := time.Parse("2006-01-02", date); err == nil {
			weekday = d.Weekday().String()
		}
	}
	if weekday == "" && timeStr == "" {
		// Date was given but unparsable; treat as unconstrained.
		return Availability{IsAvailable: true}
	}
	if weekday == "" {
		weekday = now().Weekday().String()
	}

	day, ok := p.WeeklyAvailability[weekday]

	if timeStr == "" {
		if !ok || !day.IsAvailable {
			return Availability{Reason: "Not available on " + weekday}
		}
		return Availability{IsAvailable: true, AvailableSlots: day.Slots}
	}

	if !ok {
		return Availability{Reason: "Not available on " + weekday}
	}
	if !day.IsAvailable {
		return Availability{Reason: "Not available on " + weekday, AvailableSlots: day.Slots}
	}

	requested := parseClock(timeStr)
	matched := false
	var active []models.AvailabilitySlot
	for _, slot := range day.Slots {
		if !slot.IsActive {
			continue
		}
		active = append(active, slot)
		start := parseClock(slot.StartTime)
		end := parseClock(slot.EndTime)
		// Half-open interval; a slot with start >= end can never match.
		if requested >= 0 && start >= 0 && end >= 0 && requested >= start && requested < end {
			matched = true
		}
	}

	if !matched {
		return Availability{
			Reason:         "Not available at " + formatClock12h(timeStr),
			AvailableSlots: active,
		}
	}
	return Availability{IsAvailable: true, AvailableSlots: active}
}

// parseClock converts a 24-hour "HH:MM" string to minutes since midnight,
// or -1 when malformed.
func parseClock(s string) int {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return -1
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return -1
	}
	return h*60 + m
}

// formatClock12h renders a 24-hour "HH:MM" string as 12-hour with AM/PM,
// e.g. "17:00" -> "5:00 PM". Malformed input is returned unchanged.
func formatClock12h(s string) string {
	minutes := parseClock(s)
	if minutes < 0 {
		return s
	}
	h := minutes / 60
	m := minutes % 60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, period)
}
