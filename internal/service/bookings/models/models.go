package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// Caller пользователь, выполняющий запрос (из AuthContext)
type Caller struct {
	UserID int64
	Role   domain.Role
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID   int64
	Facility domain.FacilityID
}

// GetFacilityBookingsRequest запрос администратора на все бронирования объекта
type GetFacilityBookingsRequest struct {
	Facility         domain.FacilityID
	Date             *time.Time // Фильтр по дате (опционально)
	Status           *string    // Фильтр по статусу (опционально)
	IncludeCancelled bool       // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetFacilityBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:             r.Date,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID    int64
	Facility  domain.FacilityID
	BookingID int64
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64             `json:"id"`
	Facility      domain.FacilityID `json:"facility"`
	UserID        int64             `json:"userId"`
	BookingDate   string            `json:"bookingDate"` // "2026-10-20"
	StartTime     string            `json:"startTime"`   // "10:00"
	EndTime       string            `json:"endTime"`
	DurationHours int               `json:"durationHours"`
	Status        string            `json:"status"`

	// Денормализованные данные жильца
	UserName        string `json:"userName"`
	ApartmentNumber string `json:"apartmentNumber"`

	TimeSlot       *string `json:"timeSlot,omitempty"`
	PartySize      int     `json:"partySize,omitempty"`
	EventType      *string `json:"eventType,omitempty"`
	MeetingPurpose *string `json:"meetingPurpose,omitempty"`

	CanCancel   bool    `json:"canCancel"`
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		Facility:        b.Facility,
		UserID:          b.UserID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationHours:   b.DurationHours,
		Status:          string(b.Status),
		UserName:        b.UserName,
		ApartmentNumber: b.ApartmentNumber,
		TimeSlot:        b.SlotLabel,
		PartySize:       b.PartySize,
		EventType:       b.EventType,
		MeetingPurpose:  b.MeetingPurpose,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
// canCancel вычисляет флаг возможности отмены, может быть nil
func FromDomainBookingList(bookings []*domain.Booking, canCancel func(*domain.Booking) bool) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		bookingResp := FromDomainBooking(booking)
		if bookingResp == nil {
			continue
		}
		if canCancel != nil {
			bookingResp.CanCancel = canCancel(booking)
		}
		resp.Bookings = append(resp.Bookings, *bookingResp)
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	switch s {
	case domain.StatusConfirmed, domain.StatusCancelled:
		return s, nil
	}

	return "", ErrInvalidStatus
}
