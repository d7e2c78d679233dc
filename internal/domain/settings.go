package domain

import "time"

// FacilitySettings runtime overrides of a facility's static configuration.
// A nil field keeps the built-in value.
type FacilitySettings struct {
	Facility            FacilityID
	Capacity            *int // shared-capacity facilities only
	AdvanceNoticeDays   *int
	CancelCutoffMinutes *int // pre-slot cutoff or post-booking window, depending on the policy
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsEmpty returns true if no override is set
func (s *FacilitySettings) IsEmpty() bool {
	return s.Capacity == nil && s.AdvanceNoticeDays == nil && s.CancelCutoffMinutes == nil
}
