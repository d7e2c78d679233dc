package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе заявки
	ErrInvalidStatus = errors.New("invalid parking status")
)

// Request модели

// RequestSlotRequest заявка жильца на парковочное место
type RequestSlotRequest struct {
	UserID        int64
	SlotID        string
	VehicleNumber string
	VehicleType   string
}

// Response модели

// SlotResponse парковочное место из каталога
type SlotResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AvailableSlotsResponse свободные места
type AvailableSlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

// AllocationResponse ответ с данными заявки
type AllocationResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	UserName        string  `json:"userName"`
	ApartmentNumber string  `json:"apartmentNumber"`
	SlotID          string  `json:"slotId"`
	SlotName        string  `json:"slotName"`
	VehicleNumber   string  `json:"vehicleNumber"`
	VehicleType     string  `json:"vehicleType"`
	Status          string  `json:"status"`
	ApprovedAt      *string `json:"approvedAt,omitempty"`
	RejectedAt      *string `json:"rejectedAt,omitempty"`
	ReleasedAt      *string `json:"releasedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AllocationListResponse список заявок
type AllocationListResponse struct {
	Requests []AllocationResponse `json:"requests"`
}

// Методы конвертации

// FromDomainSlots конвертирует места каталога в DTO
func FromDomainSlots(slots []domain.ParkingSlot) *AvailableSlotsResponse {
	resp := &AvailableSlotsResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
		Total: len(slots),
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, SlotResponse{ID: s.ID, Name: s.Name})
	}
	return resp
}

// FromDomainAllocation конвертирует domain модель в DTO
func FromDomainAllocation(a *domain.ParkingAllocation) *AllocationResponse {
	if a == nil {
		return nil
	}

	return &AllocationResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		UserName:        a.UserName,
		ApartmentNumber: a.ApartmentNumber,
		SlotID:          a.SlotID,
		SlotName:        a.SlotName,
		VehicleNumber:   a.VehicleNumber,
		VehicleType:     string(a.VehicleType),
		Status:          string(a.Status),
		ApprovedAt:      formatTime(a.ApprovedAt),
		RejectedAt:      formatTime(a.RejectedAt),
		ReleasedAt:      formatTime(a.ReleasedAt),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAllocationList конвертирует список заявок в DTO
func FromDomainAllocationList(allocations []*domain.ParkingAllocation) *AllocationListResponse {
	resp := &AllocationListResponse{
		Requests: make([]AllocationResponse, 0, len(allocations)),
	}
	for _, a := range allocations {
		if r := FromDomainAllocation(a); r != nil {
			resp.Requests = append(resp.Requests, *r)
		}
	}
	return resp
}

// ToDomainParkingStatus конвертирует строку в domain.ParkingStatus с валидацией
func ToDomainParkingStatus(status string) (domain.ParkingStatus, error) {
	s := domain.ParkingStatus(status)

	switch s {
	case domain.ParkingPending, domain.ParkingApproved, domain.ParkingRejected, domain.ParkingReleased:
		return s, nil
	}

	return "", ErrInvalidStatus
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
