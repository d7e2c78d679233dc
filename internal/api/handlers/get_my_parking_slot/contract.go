package get_my_parking_slot

import (
	"context"

	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking/models"
)

type ParkingService interface {
	GetMySlot(ctx context.Context, userID int64) (*models.AllocationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
