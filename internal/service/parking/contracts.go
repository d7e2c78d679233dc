package parking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/integrations/userservice"
)

// AllocationRepository интерфейс репозитория заявок на парковку
type AllocationRepository interface {
	LockTable(ctx context.Context) error
	Create(ctx context.Context, allocation *domain.ParkingAllocation) (*domain.ParkingAllocation, error)
	GetByID(ctx context.Context, id int64) (*domain.ParkingAllocation, error)
	GetActiveByUser(ctx context.Context, userID int64) (*domain.ParkingAllocation, error)
	ListActive(ctx context.Context) ([]*domain.ParkingAllocation, error)
	List(ctx context.Context, status *domain.ParkingStatus) ([]*domain.ParkingAllocation, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.ParkingStatus, at time.Time) error
}

// UserDirectory справочник жильцов
type UserDirectory interface {
	GetUser(ctx context.Context, id int64) (*userservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счётчик переходов статусов заявок
type MetricsRecorder interface {
	RecordParkingTransition(to string)
}

// EventPublisher публикация событий по заявкам
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
