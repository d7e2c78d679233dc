package domain

import "github.com/m04kA/SMC-AmenityBooking/pkg/types"

// AvailableSlot represents a time slot that still has room
type AvailableSlot struct {
	StartTime     types.TimeString
	EndTime       types.TimeString
	Label         string // named block (party hall), empty otherwise
	DurationHours int
	Capacity      int // total units
	Occupied      int // units taken by active bookings
}

// Remaining returns the number of free units
func (s AvailableSlot) Remaining() int {
	if s.Occupied >= s.Capacity {
		return 0
	}
	return s.Capacity - s.Occupied
}

// IsFull returns true if the slot has no free units
func (s AvailableSlot) IsFull() bool {
	return s.Remaining() == 0
}
