package settings

import (
	"context"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
)

// SettingsRepository интерфейс репозитория переопределений
type SettingsRepository interface {
	Get(ctx context.Context, facility domain.FacilityID) (*domain.FacilitySettings, error)
	List(ctx context.Context) ([]*domain.FacilitySettings, error)
	Upsert(ctx context.Context, settings *domain.FacilitySettings) (*domain.FacilitySettings, error)
	Delete(ctx context.Context, facility domain.FacilityID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
