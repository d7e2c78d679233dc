package events

import (
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
)

// Ключи маршрутизации topic-exchange
const (
	KeyBookingCreated   = "booking.created"
	KeyBookingCancelled = "booking.cancelled"
	KeyParkingRequested = "parking.requested"
	KeyParkingApproved  = "parking.approved"
	KeyParkingRejected  = "parking.rejected"
	KeyParkingReleased  = "parking.released"
)

// BookingEvent событие по бронированию объекта
type BookingEvent struct {
	Facility   string    `json:"facility"`
	BookingID  int64     `json:"booking_id"`
	UserID     int64     `json:"user_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	SlotLabel  *string   `json:"slot_label,omitempty"`
	PartySize  int       `json:"party_size"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ParkingEvent событие по заявке на парковку
type ParkingEvent struct {
	AllocationID  int64     `json:"allocation_id"`
	UserID        int64     `json:"user_id"`
	SlotID        string    `json:"slot_id"`
	VehicleNumber string    `json:"vehicle_number"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewBookingEvent собирает событие из бронирования
func NewBookingEvent(b *domain.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Facility:   string(b.Facility),
		BookingID:  b.ID,
		UserID:     b.UserID,
		Date:       b.BookingDate.Format(domain.DateFormat),
		StartTime:  b.StartTime.String(),
		EndTime:    b.EndTime.String(),
		SlotLabel:  b.SlotLabel,
		PartySize:  b.PartySize,
		Status:     string(b.Status),
		OccurredAt: at,
	}
}

// NewParkingEvent собирает событие из заявки на парковку
func NewParkingEvent(a *domain.ParkingAllocation, at time.Time) ParkingEvent {
	return ParkingEvent{
		AllocationID:  a.ID,
		UserID:        a.UserID,
		SlotID:        a.SlotID,
		VehicleNumber: a.VehicleNumber,
		Status:        string(a.Status),
		OccurredAt:    at,
	}
}

// ParkingKey ключ маршрутизации для нового статуса заявки
func ParkingKey(status domain.ParkingStatus) string {
	switch status {
	case domain.ParkingApproved:
		return KeyParkingApproved
	case domain.ParkingRejected:
		return KeyParkingRejected
	case domain.ParkingReleased:
		return KeyParkingReleased
	default:
		return KeyParkingRequested
	}
}
