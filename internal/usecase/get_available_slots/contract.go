package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, facility domain.FacilityID, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// AdapterProvider источник адаптера объекта с учётом переопределений
type AdapterProvider interface {
	Adapter(ctx context.Context, id domain.FacilityID) (facility.Adapter, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
