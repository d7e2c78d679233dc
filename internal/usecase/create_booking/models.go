package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
	"github.com/m04kA/SMC-AmenityBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID         int64             // ID пользователя из AuthContext
	Facility       domain.FacilityID // Объект
	Date           time.Time         // Дата бронирования (без времени)
	StartTime      types.TimeString  // Время начала слота (пусто, если указан SlotLabel)
	SlotLabel      string            // Именованный блок (party hall)
	DurationHours  int               // 0 - длительность по умолчанию
	PartySize      int               // Люди / участники / гости, в зависимости от объекта
	EventType      string            // party hall
	MeetingPurpose string            // meeting hall
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	Facility      domain.FacilityID
	UserID        int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	DurationHours int
	Status        string

	// Денормализованные данные жильца на момент бронирования
	UserName        string
	ApartmentNumber string

	SlotLabel      *string
	PartySize      int
	EventType      *string
	MeetingPurpose *string

	CreatedAt time.Time
}

func (r *Request) toEngine() facility.Request {
	return facility.Request{
		UserID:         r.UserID,
		Date:           r.Date,
		StartTime:      r.StartTime,
		SlotLabel:      r.SlotLabel,
		DurationHours:  r.DurationHours,
		PartySize:      r.PartySize,
		EventType:      r.EventType,
		MeetingPurpose: r.MeetingPurpose,
	}
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		Facility:        b.Facility,
		UserID:          b.UserID,
		BookingDate:     b.BookingDate,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		DurationHours:   b.DurationHours,
		Status:          string(b.Status),
		UserName:        b.UserName,
		ApartmentNumber: b.ApartmentNumber,
		SlotLabel:       b.SlotLabel,
		PartySize:       b.PartySize,
		EventType:       b.EventType,
		MeetingPurpose:  b.MeetingPurpose,
		CreatedAt:       b.CreatedAt,
	}
}
