package decide_parking_request

import (
	"context"

	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking/models"
)

type ParkingService interface {
	Approve(ctx context.Context, id int64) (*models.AllocationResponse, error)
	Reject(ctx context.Context, id int64) (*models.AllocationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
