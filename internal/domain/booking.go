package domain

import (
	"time"

	"github.com/m04kA/SMC-AmenityBooking/pkg/types"
)

// BookingStatus represents the status of a time-slot booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a time-slot booking of a facility
// (playground, party hall, swimming pool, meeting hall)
type Booking struct {
	ID          int64
	Facility    FacilityID
	UserID      int64
	BookingDate time.Time // calendar day, no timezone
	StartTime   types.TimeString
	EndTime     types.TimeString
	// DurationHours length of the window in whole hours
	DurationHours int
	Status        BookingStatus

	// Snapshot of the directory at booking time, never re-synced
	UserName        string
	ApartmentNumber string

	// Facility specific payload
	SlotLabel      *string // party hall block name (Morning, Afternoon, Evening)
	PartySize      int     // guests, people or attendees; 0 when the facility has none
	EventType      *string
	MeetingPurpose *string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the booking still occupies capacity
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsOwnedBy returns true if the booking belongs to the user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// StartAt returns the absolute start instant of the booking in the given location
func (b *Booking) StartAt(loc *time.Location) time.Time {
	return b.StartTime.On(b.BookingDate, loc)
}

// BookingsFilter фильтр для выборки бронирований одного объекта
type BookingsFilter struct {
	Date             *time.Time     // конкретная дата (опционально)
	UserID           *int64         // владелец (опционально)
	Status           *BookingStatus // конкретный статус (опционально)
	IncludeCancelled bool           // включать ли отменённые, если Status не указан
}
