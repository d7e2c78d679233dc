package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
	bookingRepo "github.com/m04kA/SMC-AmenityBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AmenityBooking/internal/integrations/events"
	userClient "github.com/m04kA/SMC-AmenityBooking/internal/integrations/userservice"
	"github.com/m04kA/SMC-AmenityBooking/pkg/ptr"
)

// Исходы бронирования для метрик
const (
	outcomeCreated   = "created"
	outcomeCapacity  = "capacity_exceeded"
	outcomeDuplicate = "duplicate"
	outcomeNotice    = "advance_notice"
	outcomeInvalid   = "validation"
	outcomeError     = "error"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	adapters     AdapterProvider
	directory    UserDirectory
	txManager    TransactionManager
	metrics      MetricsRecorder
	events       EventPublisher
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	adapters AdapterProvider,
	directory UserDirectory,
	txManager TransactionManager,
	metrics MetricsRecorder,
	publisher EventPublisher,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		adapters:     adapters,
		directory:    directory,
		txManager:    txManager,
		metrics:      metrics,
		events:       publisher,
		location:     loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Повторная проверка вместимости и запись выполняются в одной сериализуемой транзакции
// под advisory-блокировкой (объект, дата), поэтому два параллельных запроса
// не могут оба занять последнее место
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, facility=%s, date=%s, start=%s, label=%q, duration=%d",
		req.UserID, req.Facility, req.Date.Format(domain.DateFormat), req.StartTime, req.SlotLabel, req.DurationHours)

	// 1. Получаем адаптер объекта
	adapter, err := uc.adapters.Adapter(ctx, req.Facility)
	if err != nil {
		if errors.Is(err, facility.ErrUnknownFacility) {
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get adapter for %s: %v", req.Facility, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	if !adapter.IsTimeSlot() {
		return nil, ErrFacilityNotFound
	}

	engineReq := req.toEngine()

	// 2. Валидация полей объекта до обращения к справочнику и БД
	if err := adapter.ValidatePayload(engineReq); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.record(req.Facility, err)
		return nil, err
	}

	// 3. Снимок данных жильца
	user, err := uc.directory.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found in directory", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		uc.record(req.Facility, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var result *domain.Booking

	// 4. Повторная проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		now := uc.timeProvider.Now().In(uc.location)
		date := facility.CivilDate(req.Date)

		// 4.1. Сериализуем запись в день объекта
		if err := uc.bookingRepo.LockDate(txCtx, req.Facility, date); err != nil {
			uc.logger.Error("CreateBooking: failed to lock %s on %s: %v", req.Facility, date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to lock date: %w", ErrInternal, err)
		}

		// 4.2. Активные бронирования дня с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.List(txCtx, req.Facility, domain.BookingsFilter{Date: ptr.Ptr(date)})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 4.3. Решение движка
		slot, err := facility.Admit(adapter, engineReq, now, bookings)
		if err != nil {
			uc.logger.Warn("CreateBooking: rejected user=%d facility=%s: %v", req.UserID, req.Facility, err)
			return err
		}

		booking := facility.NewBooking(adapter, engineReq, slot)
		booking.UserName = user.Name
		booking.ApartmentNumber = user.ApartmentNumber

		// 4.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotTaken):
				return facility.ErrCapacityExceeded
			case errors.Is(err, bookingRepo.ErrDuplicateBooking):
				return facility.ErrDuplicateBooking
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	uc.record(req.Facility, err)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d facility=%s", result.ID, result.Facility)

	uc.events.Publish(ctx, events.KeyBookingCreated, events.NewBookingEvent(result, uc.timeProvider.Now()))

	return fromDomain(result), nil
}

func (uc *UseCase) record(id domain.FacilityID, err error) {
	uc.metrics.RecordBooking(string(id), outcomeOf(err))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeCreated
	case errors.Is(err, facility.ErrCapacityExceeded):
		return outcomeCapacity
	case errors.Is(err, facility.ErrDuplicateBooking):
		return outcomeDuplicate
	case errors.Is(err, facility.ErrAdvanceNotice):
		return outcomeNotice
	case errors.Is(err, facility.ErrValidation):
		return outcomeInvalid
	default:
		return outcomeError
	}
}
