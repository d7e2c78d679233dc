package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
	"github.com/m04kA/SMC-AmenityBooking/pkg/ptr"
)

// UseCase use case для получения доступных слотов объекта
type UseCase struct {
	bookingRepo  BookingRepository
	adapters     AdapterProvider
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// loc - часовой пояс комплекса, в нём считается "сегодня" и текущий час
func NewUseCase(
	bookingRepo BookingRepository,
	adapters AdapterProvider,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		adapters:     adapters,
		location:     loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Занятость каждый раз пересчитывается по активным бронированиям дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, facility=%s, date=%s, duration=%d",
		req.UserID, req.Facility, req.Date.Format(domain.DateFormat), req.DurationHours)

	// 1. Получаем адаптер объекта
	adapter, err := uc.adapters.Adapter(ctx, req.Facility)
	if err != nil {
		if errors.Is(err, facility.ErrUnknownFacility) {
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get adapter for %s: %v", req.Facility, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	if !adapter.IsTimeSlot() {
		uc.logger.Warn("GetAvailableSlots: %s is not booked by time slots", req.Facility)
		return nil, ErrFacilityNotFound
	}

	// 2. Длительность по умолчанию
	duration, err := adapter.ResolveDuration(req.DurationHours)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid duration %d: %v", req.DurationHours, err)
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.location)
	date := facility.CivilDate(req.Date)

	// 3. Получаем активные бронирования дня
	bookings, err := uc.bookingRepo.List(ctx, req.Facility, domain.BookingsFilter{Date: ptr.Ptr(date)})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Считаем свободные слоты
	slots, err := facility.AvailableSlots(adapter, date, duration, now, bookings)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for %s on %s",
		len(slots), req.Facility, date.Format(domain.DateFormat))

	return &Response{
		Facility:      req.Facility,
		Date:          date,
		DurationHours: duration,
		Slots:         slots,
	}, nil
}
