package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, facility domain.FacilityID, id int64) (*domain.Booking, error)
	List(ctx context.Context, facility domain.FacilityID, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, facility domain.FacilityID, id int64, cancelledAt time.Time) error
}

// AdapterProvider источник адаптера объекта с учётом переопределений
type AdapterProvider interface {
	Adapter(ctx context.Context, id domain.FacilityID) (facility.Adapter, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счётчики исходов отмены
type MetricsRecorder interface {
	RecordCancellation(facility, outcome string)
}

// EventPublisher публикация событий бронирования
type EventPublisher interface {
	Publish(ctx context.Context, key string, event interface{})
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
