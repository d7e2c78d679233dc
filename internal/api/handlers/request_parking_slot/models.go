package request_parking_slot

import (
	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking/models"
)

// RequestParkingSlotRequest HTTP request model
type RequestParkingSlotRequest struct {
	SlotID        string `json:"slotId" validate:"required"`
	VehicleNumber string `json:"vehicleNumber" validate:"required,max=20"`
	VehicleType   string `json:"vehicleType" validate:"required,oneof=Car Motorcycle Scooter SUV Other"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RequestParkingSlotRequest) ToServiceRequest(userID int64) *models.RequestSlotRequest {
	return &models.RequestSlotRequest{
		UserID:        userID,
		SlotID:        r.SlotID,
		VehicleNumber: r.VehicleNumber,
		VehicleType:   r.VehicleType,
	}
}
