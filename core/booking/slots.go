// Package booking provides appointment slot generation.
// Unlike the quote engine this is intentionally randomized: a date maps to
// a small random selection of times within opening hours. It
// shares no code with the pricing packages.
package booking

import (
	"math/rand"
	"sort"
	"time"
)

// Opening hours: weekdays 14:00-22:00, Saturday 14:00-17:00, Sunday closed.
const (
	openHour          = 14
	closeHourWeekday  = 22
	closeHourSaturday = 17

	slotMinutes = 15

	// SlotsPerDate is how many slots are offered for one date
	SlotsPerDate = 3
)

// Slot is one bookable time window
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// String renders the slot the way the booking form displays it
func (s Slot) String() string {
	return s.Start.Format("15h04") + " - " + s.End.Format("15h04")
}

// SlotsForDate returns up to SlotsPerDate distinct random slots for a date,
// in chronological order. An empty result means the day is closed.
// Randomness comes from rng so callers control reproducibility.
func SlotsForDate(date time.Time, rng *rand.Rand) []Slot {
	starts := possibleStarts(date)
	if len(starts) == 0 {
		return nil
	}

	count := SlotsPerDate
	if count > len(starts) {
		count = len(starts)
	}

	picked := make([]time.Time, 0, count)
	for _, i := range rng.Perm(len(starts))[:count] {
		picked = append(picked, starts[i])
	}
	sort.Slice(picked, func(i, j int) bool { return picked[i].Before(picked[j]) })

	slots := make([]Slot, 0, count)
	for _, start := range picked {
		slots = append(slots, Slot{
			Start: start,
			End:   start.Add(slotMinutes * time.Minute),
		})
	}
	return slots
}

// possibleStarts enumerates every slot start within opening hours
func possibleStarts(date time.Time) []time.Time {
	closeHour := closeHourWeekday
	switch date.Weekday() {
	case time.Sunday:
		return nil
	case time.Saturday:
		closeHour = closeHourSaturday
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	var starts []time.Time
	for h := openHour; h < closeHour; h++ {
		for m := 0; m < 60; m += slotMinutes {
			starts = append(starts, day.Add(time.Duration(h)*time.Hour+time.Duration(m)*time.Minute))
		}
	}
	return starts
}
