package update_facility_settings

import (
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/settings/models"
)

// UpdateFacilitySettingsRequest HTTP request model
// Отсутствующее поле - вернуть встроенное значение объекта
type UpdateFacilitySettingsRequest struct {
	Capacity            *int `json:"capacity,omitempty" validate:"omitempty,gte=1"`
	AdvanceNoticeDays   *int `json:"advanceNoticeDays,omitempty" validate:"omitempty,gte=0"`
	CancelCutoffMinutes *int `json:"cancelCutoffMinutes,omitempty" validate:"omitempty,gte=0"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateFacilitySettingsRequest) ToServiceRequest(id domain.FacilityID) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		Facility:            id,
		Capacity:            r.Capacity,
		AdvanceNoticeDays:   r.AdvanceNoticeDays,
		CancelCutoffMinutes: r.CancelCutoffMinutes,
	}
}
