package facility

import (
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
)

// AvailableSlots returns the slots of date that still have room, in chronological order.
//
// now must be expressed in the facility's local timezone. On the current date
// slots whose start hour is not strictly after the current hour are dropped,
// so a slot starting later within the current hour is never offered.
// A date before the advance-notice horizon is an error, not an empty list.
// Past dates are not rejected here.
func AvailableSlots(a Adapter, date time.Time, durationHours int, now time.Time, bookings []*domain.Booking) ([]domain.AvailableSlot, error) {
	if !a.IsTimeSlot() {
		return nil, ErrUnknownFacility
	}

	if err := a.checkAdvanceNotice(date, now); err != nil {
		return nil, err
	}

	slots, err := GenerateSlots(a, durationHours)
	if err != nil {
		return nil, err
	}

	day := activeOn(bookings, date)
	capacity := a.CapacityOf()

	result := make([]domain.AvailableSlot, 0, len(slots))
	for _, s := range slots {
		if startedByHour(date, s.Start.Hour(), now) {
			continue
		}

		occupied := a.OccupancyOf(s, day)
		if occupied >= capacity {
			continue
		}

		result = append(result, domain.AvailableSlot{
			StartTime:     s.Start,
			EndTime:       s.End,
			Label:         s.Label,
			DurationHours: s.DurationHours,
			Capacity:      capacity,
			Occupied:      occupied,
		})
	}

	return result, nil
}
