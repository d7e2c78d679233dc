package facility

import (
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/pkg/types"
)

// Overlaps reports whether [s1,e1) and [s2,e2) intersect
func Overlaps(s1, e1, s2, e2 types.TimeString) bool {
	return s1.IsBefore(e2) && s2.IsBefore(e1)
}

// CapacityOf total units a slot of this facility holds
func (a Adapter) CapacityOf() int {
	if a.Capacity.Kind == Exclusive {
		return 1
	}
	return a.Capacity.Ceiling
}

// UnitsOf units consumed by one booking with the given party size
func (a Adapter) UnitsOf(partySize int) int {
	if a.Capacity.Kind == Shared && a.Capacity.UnitsFromPartySize {
		return partySize
	}
	return 1
}

// OccupancyOf sum of units of the active bookings overlapping the slot.
// bookings must belong to a single date.
func (a Adapter) OccupancyOf(slot Slot, bookings []*domain.Booking) int {
	occupied := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if Overlaps(slot.Start, slot.End, b.StartTime, b.EndTime) {
			occupied += a.UnitsOf(b.PartySize)
		}
	}
	return occupied
}

// Admits reports whether units more fit into the slot
func (a Adapter) Admits(slot Slot, bookings []*domain.Booking, units int) bool {
	return a.OccupancyOf(slot, bookings)+units <= a.CapacityOf()
}

// activeOn active bookings of the given calendar day
func activeOn(bookings []*domain.Booking, date time.Time) []*domain.Booking {
	day := CivilDate(date)
	out := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() && CivilDate(b.BookingDate).Equal(day) {
			out = append(out, b)
		}
	}
	return out
}
