package models

import (
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
)

// UpdateSettingsRequest полная замена переопределений объекта
// nil - вернуть встроенное значение
type UpdateSettingsRequest struct {
	Facility            domain.FacilityID
	Capacity            *int `json:"capacity"`
	AdvanceNoticeDays   *int `json:"advanceNoticeDays"`
	CancelCutoffMinutes *int `json:"cancelCutoffMinutes"`
}

// NamedSlotResponse именованный блок (party hall)
type NamedSlotResponse struct {
	Label     string `json:"label"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// OverridesResponse заданные администратором значения
type OverridesResponse struct {
	Capacity            *int      `json:"capacity,omitempty"`
	AdvanceNoticeDays   *int      `json:"advanceNoticeDays,omitempty"`
	CancelCutoffMinutes *int      `json:"cancelCutoffMinutes,omitempty"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// FacilityResponse действующие правила объекта
type FacilityResponse struct {
	ID   domain.FacilityID `json:"id"`
	Name string            `json:"name"`
	Kind string            `json:"kind"` // time-slot | parking

	OpenTime   string              `json:"openTime,omitempty"`
	CloseTime  string              `json:"closeTime,omitempty"`
	Durations  []int               `json:"durations,omitempty"`
	NamedSlots []NamedSlotResponse `json:"namedSlots,omitempty"`

	CapacityKind       string `json:"capacityKind"`
	Capacity           int    `json:"capacity"`
	UnitsFromPartySize bool   `json:"unitsFromPartySize"`
	PartySizeField     string `json:"partySizeField,omitempty"`
	PartySizeMin       int    `json:"partySizeMin,omitempty"`
	PartySizeMax       int    `json:"partySizeMax,omitempty"`

	AdvanceNoticeDays        int    `json:"advanceNoticeDays"`
	CancellationPolicy       string `json:"cancellationPolicy"`
	CancelWindowMinutes      int    `json:"cancelWindowMinutes"`
	OneBookingPerUserPerDate bool   `json:"oneBookingPerUserPerDate"`

	ParkingSlots int `json:"parkingSlots,omitempty"`

	Overrides *OverridesResponse `json:"overrides,omitempty"`
}

// FacilityListResponse каталог объектов
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// FromAdapter конвертирует адаптер (с уже применёнными переопределениями) в DTO
func FromAdapter(a facility.Adapter, overrides *domain.FacilitySettings) FacilityResponse {
	resp := FacilityResponse{
		ID:                       a.ID,
		Name:                     a.Name,
		Kind:                     "parking",
		CapacityKind:             a.Capacity.Kind.String(),
		Capacity:                 a.CapacityOf(),
		UnitsFromPartySize:       a.Capacity.UnitsFromPartySize,
		PartySizeField:           a.Payload.PartySizeField,
		PartySizeMin:             a.Payload.PartySizeMin,
		PartySizeMax:             a.Payload.PartySizeMax,
		AdvanceNoticeDays:        a.AdvanceNoticeDays,
		CancellationPolicy:       a.Cancellation.Kind.String(),
		CancelWindowMinutes:      int(a.Cancellation.Window / time.Minute),
		OneBookingPerUserPerDate: a.OneBookingPerUserPerDate,
	}

	if a.IsTimeSlot() {
		resp.Kind = "time-slot"
		resp.OpenTime = a.Open.String()
		resp.CloseTime = a.Close.String()
		resp.Durations = a.Durations
		for _, ns := range a.NamedSlots {
			resp.NamedSlots = append(resp.NamedSlots, NamedSlotResponse{
				Label:     ns.Label,
				StartTime: ns.Start.String(),
				EndTime:   ns.End.String(),
			})
		}
	} else {
		resp.ParkingSlots = len(a.ParkingSlots)
		resp.Capacity = len(a.ParkingSlots)
	}

	if overrides != nil && !overrides.IsEmpty() {
		resp.Overrides = &OverridesResponse{
			Capacity:            overrides.Capacity,
			AdvanceNoticeDays:   overrides.AdvanceNoticeDays,
			CancelCutoffMinutes: overrides.CancelCutoffMinutes,
			UpdatedAt:           overrides.UpdatedAt,
		}
	}

	return resp
}

// ToDomainSettings конвертирует запрос в domain модель
func (r *UpdateSettingsRequest) ToDomainSettings() *domain.FacilitySettings {
	return &domain.FacilitySettings{
		Facility:            r.Facility,
		Capacity:            r.Capacity,
		AdvanceNoticeDays:   r.AdvanceNoticeDays,
		CancelCutoffMinutes: r.CancelCutoffMinutes,
	}
}
