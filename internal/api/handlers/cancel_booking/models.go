package cancel_booking

import (
	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису
// Отменяющий всегда текущий пользователь, тело запроса не нужно
func ToServiceRequest(userID int64, id domain.FacilityID, bookingID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		UserID:    userID,
		Facility:  id,
		BookingID: bookingID,
	}
}
