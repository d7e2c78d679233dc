package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
	"github.com/m04kA/SMC-AmenityBooking/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	LockDate(ctx context.Context, facility domain.FacilityID, date time.Time) error
	List(ctx context.Context, facility domain.FacilityID, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AdapterProvider источник адаптера объекта с учётом переопределений
type AdapterProvider interface {
	Adapter(ctx context.Context, id domain.FacilityID) (facility.Adapter, error)
}

// UserDirectory интерфейс справочника пользователей (UserService)
type UserDirectory interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счётчики исходов бронирования
type MetricsRecorder interface {
	RecordBooking(facility, outcome string)
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
