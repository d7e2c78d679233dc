package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
	createBooking "github.com/m04kA/SMC-AmenityBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AmenityBooking/pkg/types"
)

// CreateBookingRequest HTTP request model
// Размер группы можно передать как partySize или именем поля объекта
// (numberOfPeople, numberOfAttendees, numberOfGuests)
type CreateBookingRequest struct {
	Date      string `json:"date" validate:"required"`             // "2026-10-20"
	StartTime string `json:"startTime,omitempty"`                  // "10:00"
	TimeSlot  string `json:"timeSlot,omitempty" validate:"max=32"` // party hall: Morning / Afternoon / Evening
	Duration  int    `json:"duration,omitempty" validate:"gte=0,lte=24"`

	PartySize         int `json:"partySize,omitempty" validate:"gte=0"`
	NumberOfPeople    int `json:"numberOfPeople,omitempty" validate:"gte=0"`
	NumberOfAttendees int `json:"numberOfAttendees,omitempty" validate:"gte=0"`
	NumberOfGuests    int `json:"numberOfGuests,omitempty" validate:"gte=0"`

	EventType      string `json:"eventType,omitempty"`
	MeetingPurpose string `json:"meetingPurpose,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64             `json:"id"`
	Facility        domain.FacilityID `json:"facility"`
	UserID          int64             `json:"userId"`
	UserName        string            `json:"userName"`
	ApartmentNumber string            `json:"apartmentNumber"`
	BookingDate     string            `json:"bookingDate"`
	StartTime       string            `json:"startTime"`
	EndTime         string            `json:"endTime"`
	DurationHours   int               `json:"durationHours"`
	TimeSlot        *string           `json:"timeSlot,omitempty"`
	PartySize       int               `json:"partySize,omitempty"`
	EventType       *string           `json:"eventType,omitempty"`
	MeetingPurpose  *string           `json:"meetingPurpose,omitempty"`
	Status          string            `json:"status"`
	CreatedAt       string            `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64, id domain.FacilityID) (*createBooking.Request, error) {
	// Парсим дату
	date, err := facility.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время (для party hall может быть не указано)
	var startTime types.TimeString
	if r.StartTime != "" {
		startTime, err = types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, &facility.ValidationError{Field: "startTime", Reason: "must be in HH:MM format"}
		}
	}

	return &createBooking.Request{
		UserID:         userID,
		Facility:       id,
		Date:           date,
		StartTime:      startTime,
		SlotLabel:      r.TimeSlot,
		DurationHours:  r.Duration,
		PartySize:      r.partySize(),
		EventType:      r.EventType,
		MeetingPurpose: r.MeetingPurpose,
	}, nil
}

func (r *CreateBookingRequest) partySize() int {
	for _, n := range []int{r.PartySize, r.NumberOfPeople, r.NumberOfAttendees, r.NumberOfGuests} {
		if n > 0 {
			return n
		}
	}
	return 0
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		Facility:        resp.Facility,
		UserID:          resp.UserID,
		UserName:        resp.UserName,
		ApartmentNumber: resp.ApartmentNumber,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationHours:   resp.DurationHours,
		TimeSlot:        resp.SlotLabel,
		PartySize:       resp.PartySize,
		EventType:       resp.EventType,
		MeetingPurpose:  resp.MeetingPurpose,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
