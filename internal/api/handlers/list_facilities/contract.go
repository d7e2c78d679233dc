package list_facilities

import (
	"context"

	"github.com/m04kA/SMC-AmenityBooking/internal/service/settings/models"
)

type SettingsService interface {
	List(ctx context.Context) (*models.FacilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
