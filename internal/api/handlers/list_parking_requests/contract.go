package list_parking_requests

import (
	"context"

	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking/models"
)

type ParkingService interface {
	ListAll(ctx context.Context, status *string) (*models.AllocationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
