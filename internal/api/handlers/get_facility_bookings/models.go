package get_facility_bookings

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	id domain.FacilityID,
	dateStr string,
	statusStr string,
	includeCancelledStr string,
) (*models.GetFacilityBookingsRequest, error) {
	req := &models.GetFacilityBookingsRequest{
		Facility:         id,
		IncludeCancelled: false, // По умолчанию только активные
	}

	// Парсим date если указана
	if dateStr != "" {
		date, err := facility.ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим includeCancelled если указан
	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
