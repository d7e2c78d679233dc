package get_available_slots

import (
	"strconv"
	"strings"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
	getAvailableSlots "github.com/m04kA/SMC-AmenityBooking/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель свободного слота
type SlotResponse struct {
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	TimeSlot      string `json:"timeSlot,omitempty"`
	DurationHours int    `json:"durationHours"`
	Capacity      int    `json:"capacity"`
	Occupied      int    `json:"occupied"`
	Remaining     int    `json:"remaining"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Facility      domain.FacilityID `json:"facility"`
	Date          string            `json:"date"`
	DurationHours int               `json:"durationHours"`
	Slots         []SlotResponse    `json:"slots"`
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(userID int64, id domain.FacilityID, dateStr, durationStr string) (*getAvailableSlots.Request, error) {
	date, err := facility.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	var duration int
	if durationStr = strings.TrimSpace(durationStr); durationStr != "" {
		duration, err = strconv.Atoi(durationStr)
		if err != nil || duration <= 0 {
			return nil, &facility.ValidationError{Field: "duration", Reason: "must be a positive number of hours"}
		}
	}

	return &getAvailableSlots.Request{
		UserID:        userID,
		Facility:      id,
		Date:          date,
		DurationHours: duration,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for i := range resp.Slots {
		s := &resp.Slots[i]
		slots = append(slots, SlotResponse{
			StartTime:     s.StartTime.String(),
			EndTime:       s.EndTime.String(),
			TimeSlot:      s.Label,
			DurationHours: s.DurationHours,
			Capacity:      s.Capacity,
			Occupied:      s.Occupied,
			Remaining:     s.Remaining(),
		})
	}

	return &AvailableSlotsResponse{
		Facility:      resp.Facility,
		Date:          resp.Date.Format(domain.DateFormat),
		DurationHours: resp.DurationHours,
		Slots:         slots,
	}
}
