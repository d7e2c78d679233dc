package get_booking

import (
	"context"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id domain.FacilityID, bookingID int64, caller models.Caller) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
