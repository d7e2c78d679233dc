package get_parking_slots

import (
	"context"

	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking/models"
)

type ParkingService interface {
	AvailableSlots(ctx context.Context) (*models.AvailableSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
