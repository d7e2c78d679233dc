package facility

import (
	"fmt"

	"github.com/m04kA/SMC-AmenityBooking/pkg/types"
)

// Slot candidate window [Start, End) of a single operating day
type Slot struct {
	Start         types.TimeString
	End           types.TimeString
	Label         string
	DurationHours int
}

// ResolveDuration returns the requested duration, or the default when none was given
func (a Adapter) ResolveDuration(hours int) (int, error) {
	if !a.IsTimeSlot() {
		return 0, ErrUnknownFacility
	}
	if hours == 0 {
		return a.Durations[0], nil
	}
	for _, d := range a.Durations {
		if d == hours {
			return hours, nil
		}
	}
	return 0, invalid("duration", "must be one of %v hours", a.Durations)
}

// GenerateSlots returns the ordered slot grid of one operating day.
// Starts are hourly; a slot is dropped if it would run past closing.
// Facilities with named blocks return the blocks as is.
func GenerateSlots(a Adapter, durationHours int) ([]Slot, error) {
	d, err := a.ResolveDuration(durationHours)
	if err != nil {
		return nil, err
	}

	if len(a.NamedSlots) > 0 {
		slots := make([]Slot, 0, len(a.NamedSlots))
		for _, ns := range a.NamedSlots {
			slots = append(slots, Slot{Start: ns.Start, End: ns.End, Label: ns.Label, DurationHours: d})
		}
		return slots, nil
	}

	length := d * 60
	slots := make([]Slot, 0, (a.Close.Minutes()-a.Open.Minutes())/60)
	for start := a.Open.Minutes(); start+length <= a.Close.Minutes(); start += 60 {
		s, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, fmt.Errorf("generate slots for %s: %w", a.ID, err)
		}
		e, err := types.NewTimeStringFromMinutes(start + length)
		if err != nil {
			return nil, fmt.Errorf("generate slots for %s: %w", a.ID, err)
		}
		slots = append(slots, Slot{Start: s, End: e, DurationHours: d})
	}

	return slots, nil
}

// findSlot locates the grid slot chosen by label or start time
func (a Adapter) findSlot(slots []Slot, start types.TimeString, label string) (Slot, error) {
	for _, s := range slots {
		if label != "" && s.Label == label {
			return s, nil
		}
		if label == "" && !start.IsZero() && s.Start.Equal(start) {
			return s, nil
		}
	}

	if label != "" {
		return Slot{}, invalid("timeSlot", "unknown time slot %q", label)
	}
	if start.IsZero() {
		return Slot{}, invalid("startTime", "is required")
	}
	return Slot{}, invalid("startTime", "%s is not a valid slot start", start)
}
