package facility

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/pkg/types"
)

// Request booking request of a time-slot facility
type Request struct {
	UserID        int64
	Date          time.Time
	StartTime     types.TimeString // zero when SlotLabel is used
	SlotLabel     string
	DurationHours int

	PartySize      int
	EventType      string
	MeetingPurpose string
}

// ValidatePayload checks the facility specific fields of the request
func (a Adapter) ValidatePayload(req Request) error {
	p := a.Payload

	if p.PartySizeField != "" {
		if req.PartySize < p.PartySizeMin {
			return invalid(p.PartySizeField, "must be at least %d", p.PartySizeMin)
		}
		if p.PartySizeMax > 0 && req.PartySize > p.PartySizeMax {
			return invalid(p.PartySizeField, "must be between %d and %d", p.PartySizeMin, p.PartySizeMax)
		}
		// a party larger than the whole slot can never be admitted
		if a.Capacity.UnitsFromPartySize && req.PartySize > a.CapacityOf() {
			return invalid(p.PartySizeField, "must be at most %d", a.CapacityOf())
		}
	}

	if p.RequireEventType {
		et := strings.TrimSpace(req.EventType)
		if et == "" {
			return invalid("eventType", "is required")
		}
		if len(et) > domain.MaxEventTypeLength {
			return invalid("eventType", "must be at most %d characters", domain.MaxEventTypeLength)
		}
	}

	if p.RequireMeetingPurpose {
		mp := strings.TrimSpace(req.MeetingPurpose)
		if mp == "" {
			return invalid("meetingPurpose", "is required")
		}
		if len(mp) > domain.MaxMeetingPurposeLength {
			return invalid("meetingPurpose", "must be at most %d characters", domain.MaxMeetingPurposeLength)
		}
	}

	return nil
}

// Admit decides whether the request can be written next to the given bookings.
//
// It is the write-time re-check of availability: the same grid, hour filter
// and capacity rule as AvailableSlots, plus the per-user uniqueness rules.
// now must be expressed in the facility's local timezone.
// Capacity is checked before duplicates.
func Admit(a Adapter, req Request, now time.Time, bookings []*domain.Booking) (Slot, error) {
	if !a.IsTimeSlot() {
		return Slot{}, ErrUnknownFacility
	}

	if err := a.ValidatePayload(req); err != nil {
		return Slot{}, err
	}

	date := CivilDate(req.Date)
	today := CivilDate(now)
	if date.Before(today) {
		return Slot{}, ErrDateInPast
	}

	if err := a.checkAdvanceNotice(date, today); err != nil {
		return Slot{}, err
	}

	slots, err := GenerateSlots(a, req.DurationHours)
	if err != nil {
		return Slot{}, err
	}

	slot, err := a.findSlot(slots, req.StartTime, req.SlotLabel)
	if err != nil {
		return Slot{}, err
	}

	if startedByHour(date, slot.Start.Hour(), now) {
		return Slot{}, ErrSlotElapsed
	}

	day := activeOn(bookings, date)

	if !a.Admits(slot, day, a.UnitsOf(req.PartySize)) {
		return Slot{}, ErrCapacityExceeded
	}

	for _, b := range day {
		if b.UserID != req.UserID {
			continue
		}
		if a.OneBookingPerUserPerDate || Overlaps(slot.Start, slot.End, b.StartTime, b.EndTime) {
			return Slot{}, ErrDuplicateBooking
		}
	}

	return slot, nil
}

// NewBooking builds the booking record for an admitted request.
// The caller fills in the directory snapshot and persists it.
func NewBooking(a Adapter, req Request, slot Slot) *domain.Booking {
	b := &domain.Booking{
		Facility:      a.ID,
		UserID:        req.UserID,
		BookingDate:   CivilDate(req.Date),
		StartTime:     slot.Start,
		EndTime:       slot.End,
		DurationHours: slot.DurationHours,
		Status:        domain.StatusConfirmed,
	}

	if a.Payload.PartySizeField != "" {
		b.PartySize = req.PartySize
	}
	if slot.Label != "" {
		label := slot.Label
		b.SlotLabel = &label
	}
	if a.Payload.RequireEventType {
		et := strings.TrimSpace(req.EventType)
		b.EventType = &et
	}
	if a.Payload.RequireMeetingPurpose {
		mp := strings.TrimSpace(req.MeetingPurpose)
		b.MeetingPurpose = &mp
	}

	return b
}
