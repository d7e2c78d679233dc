package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
	bookingRepo "github.com/m04kA/SMC-AmenityBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AmenityBooking/internal/integrations/events"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-AmenityBooking/pkg/ptr"
)

// Service сервис для работы с бронированиями объектов
type Service struct {
	bookingRepo  BookingRepository
	adapters     AdapterProvider
	txManager    TransactionManager
	metrics      MetricsRecorder
	events       EventPublisher
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	adapters AdapterProvider,
	txManager TransactionManager,
	metrics MetricsRecorder,
	publisher EventPublisher,
	loc *time.Location,
	logger Logger,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		bookingRepo:  bookingRepo,
		adapters:     adapters,
		txManager:    txManager,
		metrics:      metrics,
		events:       publisher,
		location:     loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, администратор и охрана - любое
func (s *Service) GetByID(ctx context.Context, id domain.FacilityID, bookingID int64, caller models.Caller) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching %s booking id=%d for user=%d", id, bookingID, caller.UserID)

	adapter, err := s.adapter(ctx, id)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: %s booking id=%d not found", id, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.IsOwnedBy(caller.UserID) && !caller.Role.IsStaff() {
		s.logger.Warn("GetByID: access denied for user=%d to %s booking id=%d", caller.UserID, id, bookingID)
		return nil, ErrAccessDenied
	}

	resp := models.FromDomainBooking(booking)
	resp.CanCancel = booking.IsOwnedBy(caller.UserID) && adapter.CanCancel(booking, s.now(), s.location)
	return resp, nil
}

// GetUserBookings получает активные бронирования пользователя, сначала новые
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching %s bookings for user=%d", req.Facility, req.UserID)

	adapter, err := s.adapter(ctx, req.Facility)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.List(ctx, req.Facility, domain.BookingsFilter{UserID: ptr.Ptr(req.UserID)})
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	now := s.now()
	canCancel := func(b *domain.Booking) bool {
		return adapter.CanCancel(b, now, s.location)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings, canCancel), nil
}

// GetFacilityBookings получает все бронирования объекта
// Доступно только администратору (проверяется в middleware)
//
// Примеры использования:
// - Все активные бронирования: GetFacilityBookings(ctx, &GetFacilityBookingsRequest{Facility: "playground"})
// - Бронирования на дату: указать Date
// - Только отменённые: указать Status = "cancelled"
// - Включая отменённые: IncludeCancelled = true
func (s *Service) GetFacilityBookings(ctx context.Context, req *models.GetFacilityBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetFacilityBookings: fetching %s bookings, date=%v, status=%v, includeCancelled=%t",
		req.Facility, req.Date, req.Status, req.IncludeCancelled)

	if _, err := s.adapter(ctx, req.Facility); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFacilityBookings: invalid filter for %s: %v", req.Facility, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, req.Facility, filter)
	if err != nil {
		s.logger.Error("GetFacilityBookings: repository error for %s: %v", req.Facility, err)
		return nil, fmt.Errorf("%w: GetFacilityBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFacilityBookings: successfully fetched %d bookings for %s", len(bookings), req.Facility)
	return models.FromDomainBookingList(bookings, nil), nil
}

// Cancel отменяет бронирование
// Отменить может только владелец и только пока открыто окно отмены объекта
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling %s booking id=%d by user=%d", req.Facility, req.BookingID, req.UserID)

	adapter, err := s.adapter(ctx, req.Facility)
	if err != nil {
		return nil, err
	}

	var result *domain.Booking

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Блокируем строку бронирования (FOR UPDATE)
		booking, err := s.bookingRepo.GetByID(txCtx, req.Facility, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: %s booking id=%d not found", req.Facility, req.BookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %w", ErrInternal, err)
		}

		if !booking.IsOwnedBy(req.UserID) {
			s.logger.Warn("Cancel: access denied for user=%d to %s booking id=%d", req.UserID, req.Facility, req.BookingID)
			return ErrAccessDenied
		}

		now := s.now()
		if err := adapter.CheckCancellation(booking, now, s.location); err != nil {
			s.logger.Warn("Cancel: %s booking id=%d: %v", req.Facility, req.BookingID, err)
			return err
		}

		if err := s.bookingRepo.Cancel(txCtx, req.Facility, req.BookingID, now); err != nil {
			if errors.Is(err, bookingRepo.ErrCannotCancel) {
				return facility.ErrAlreadyCancelled
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %w", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelled
		booking.CancelledAt = &now
		booking.UpdatedAt = now
		result = booking
		return nil
	})

	s.metrics.RecordCancellation(string(req.Facility), cancellationOutcome(err))
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled %s booking id=%d", req.Facility, req.BookingID)

	s.events.Publish(ctx, events.KeyBookingCancelled, events.NewBookingEvent(result, s.timeProvider.Now()))

	return models.FromDomainBooking(result), nil
}

// Вспомогательные методы

func (s *Service) adapter(ctx context.Context, id domain.FacilityID) (facility.Adapter, error) {
	adapter, err := s.adapters.Adapter(ctx, id)
	if err != nil {
		if errors.Is(err, facility.ErrUnknownFacility) {
			return facility.Adapter{}, ErrFacilityNotFound
		}
		s.logger.Error("adapter: failed to get adapter for %s: %v", id, err)
		return facility.Adapter{}, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}
	if !adapter.IsTimeSlot() {
		return facility.Adapter{}, ErrFacilityNotFound
	}
	return adapter, nil
}

func (s *Service) now() time.Time {
	return s.timeProvider.Now().In(s.location)
}

func cancellationOutcome(err error) string {
	switch {
	case err == nil:
		return "cancelled"
	case errors.Is(err, facility.ErrCancellationWindowClosed):
		return "window_closed"
	case errors.Is(err, facility.ErrAlreadyCancelled):
		return "already_cancelled"
	case errors.Is(err, ErrAccessDenied):
		return "not_owner"
	case errors.Is(err, ErrBookingNotFound):
		return "not_found"
	default:
		return "error"
	}
}
