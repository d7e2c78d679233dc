package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-AmenityBooking/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
