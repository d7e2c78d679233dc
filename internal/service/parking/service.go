package parking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
	parkingRepo "github.com/m04kA/SMC-AmenityBooking/internal/infra/storage/parking"
	"github.com/m04kA/SMC-AmenityBooking/internal/integrations/events"
	userClient "github.com/m04kA/SMC-AmenityBooking/internal/integrations/userservice"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/parking/models"
)

// Service сервис парковки: заявки жильцов и их одобрение администратором
type Service struct {
	repo         AllocationRepository
	directory    UserDirectory
	txManager    TransactionManager
	metrics      MetricsRecorder
	events       EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса парковки
func NewService(
	repo AllocationRepository,
	directory UserDirectory,
	txManager TransactionManager,
	metrics MetricsRecorder,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		directory:    directory,
		txManager:    txManager,
		metrics:      metrics,
		events:       publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// AvailableSlots места каталога, не занятые активными заявками
func (s *Service) AvailableSlots(ctx context.Context) (*models.AvailableSlotsResponse, error) {
	active, err := s.repo.ListActive(ctx)
	if err != nil {
		s.logger.Error("AvailableSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: AvailableSlots - repository error: %v", ErrInternal, err)
	}

	slots := facility.AvailableParkingSlots(active)

	s.logger.Info("AvailableSlots: %d of %d slots available", len(slots), len(facility.ParkingSlots()))
	return models.FromDomainSlots(slots), nil
}

// RequestSlot создает заявку на место в статусе pending
// Одно активное место на жильца и одна активная заявка на место
func (s *Service) RequestSlot(ctx context.Context, req *models.RequestSlotRequest) (*models.AllocationResponse, error) {
	s.logger.Info("RequestSlot: user=%d, slot=%s", req.UserID, req.SlotID)

	engineReq, err := facility.ValidateParkingRequest(facility.ParkingRequest{
		UserID:        req.UserID,
		SlotID:        req.SlotID,
		VehicleNumber: req.VehicleNumber,
		VehicleType:   domain.VehicleType(req.VehicleType),
	})
	if err != nil {
		s.logger.Warn("RequestSlot: validation failed: %v", err)
		return nil, err
	}

	user, err := s.directory.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			s.logger.Warn("RequestSlot: user id=%d not found in directory", req.UserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("RequestSlot: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var result *domain.ParkingAllocation

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.repo.LockTable(txCtx); err != nil {
			s.logger.Error("RequestSlot: failed to lock allocations: %v", err)
			return fmt.Errorf("%w: failed to lock allocations: %w", ErrInternal, err)
		}

		active, err := s.repo.ListActive(txCtx)
		if err != nil {
			s.logger.Error("RequestSlot: failed to get active allocations: %v", err)
			return fmt.Errorf("%w: failed to get active allocations: %w", ErrInternal, err)
		}

		admitted, slot, err := facility.AdmitParking(engineReq, active)
		if err != nil {
			s.logger.Warn("RequestSlot: rejected user=%d slot=%s: %v", req.UserID, engineReq.SlotID, err)
			return err
		}

		created, err := s.repo.Create(txCtx, &domain.ParkingAllocation{
			UserID:          admitted.UserID,
			UserName:        user.Name,
			ApartmentNumber: user.ApartmentNumber,
			SlotID:          slot.ID,
			SlotName:        slot.Name,
			VehicleNumber:   admitted.VehicleNumber,
			VehicleType:     admitted.VehicleType,
			Status:          domain.ParkingPending,
		})
		if err != nil {
			switch {
			case errors.Is(err, parkingRepo.ErrSlotTaken):
				return facility.ErrCapacityExceeded
			case errors.Is(err, parkingRepo.ErrUserHasAllocation):
				return facility.ErrDuplicateBooking
			}
			s.logger.Error("RequestSlot: failed to create allocation: %v", err)
			return fmt.Errorf("%w: failed to create allocation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("RequestSlot: created allocation id=%d slot=%s for user=%d", result.ID, result.SlotID, result.UserID)

	s.metrics.RecordParkingTransition(string(domain.ParkingPending))
	s.events.Publish(ctx, events.KeyParkingRequested, events.NewParkingEvent(result, s.timeProvider.Now()))

	return models.FromDomainAllocation(result), nil
}

// GetMySlot активная (pending/approved) заявка жильца
func (s *Service) GetMySlot(ctx context.Context, userID int64) (*models.AllocationResponse, error) {
	allocation, err := s.repo.GetActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, parkingRepo.ErrAllocationNotFound) {
			return nil, ErrAllocationNotFound
		}
		s.logger.Error("GetMySlot: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetMySlot - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAllocation(allocation), nil
}

// Release освобождает одобренное место жильца
func (s *Service) Release(ctx context.Context, userID int64) (*models.AllocationResponse, error) {
	s.logger.Info("Release: releasing parking slot of user=%d", userID)

	var result *domain.ParkingAllocation

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		allocation, err := s.repo.GetActiveByUser(txCtx, userID)
		if err != nil {
			if errors.Is(err, parkingRepo.ErrAllocationNotFound) {
				return ErrAllocationNotFound
			}
			return fmt.Errorf("%w: Release - repository error: %w", ErrInternal, err)
		}
		// освобождать можно только одобренное место, pending ещё ничего не занимает
		if allocation.Status != domain.ParkingApproved {
			return fmt.Errorf("%w: no approved slot, allocation id=%d is %s", ErrAllocationNotFound, allocation.ID, allocation.Status)
		}

		result, err = s.transition(txCtx, allocation, domain.ParkingReleased)
		return err
	})
	if err != nil {
		s.logger.Warn("Release: user=%d: %v", userID, err)
		return nil, err
	}

	s.announce(ctx, result)
	return models.FromDomainAllocation(result), nil
}

// Approve одобряет заявку (администратор)
func (s *Service) Approve(ctx context.Context, id int64) (*models.AllocationResponse, error) {
	return s.decide(ctx, id, domain.ParkingApproved)
}

// Reject отклоняет заявку или отзывает одобренное место (администратор)
func (s *Service) Reject(ctx context.Context, id int64) (*models.AllocationResponse, error) {
	return s.decide(ctx, id, domain.ParkingRejected)
}

// ListAll все заявки, сначала новые
func (s *Service) ListAll(ctx context.Context, status *string) (*models.AllocationListResponse, error) {
	var filter *domain.ParkingStatus
	if status != nil {
		st, err := models.ToDomainParkingStatus(*status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter = &st
	}

	allocations, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d allocations, status=%v", len(allocations), status)
	return models.FromDomainAllocationList(allocations), nil
}

// Вспомогательные методы

func (s *Service) decide(ctx context.Context, id int64, to domain.ParkingStatus) (*models.AllocationResponse, error) {
	s.logger.Info("Decide: allocation id=%d -> %s", id, to)

	var result *domain.ParkingAllocation

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		allocation, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, parkingRepo.ErrAllocationNotFound) {
				return ErrAllocationNotFound
			}
			return fmt.Errorf("%w: Decide - repository error: %w", ErrInternal, err)
		}

		result, err = s.transition(txCtx, allocation, to)
		return err
	})
	if err != nil {
		s.logger.Warn("Decide: allocation id=%d -> %s: %v", id, to, err)
		return nil, err
	}

	s.announce(ctx, result)
	return models.FromDomainAllocation(result), nil
}

// transition проверяет переход по автомату состояний и сохраняет его
func (s *Service) transition(ctx context.Context, a *domain.ParkingAllocation, to domain.ParkingStatus) (*domain.ParkingAllocation, error) {
	if err := facility.CheckParkingTransition(a.Status, to); err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	if err := s.repo.UpdateStatus(ctx, a.ID, a.Status, to, now); err != nil {
		if errors.Is(err, parkingRepo.ErrStatusChanged) {
			return nil, fmt.Errorf("%w: allocation id=%d changed concurrently", facility.ErrInvalidTransition, a.ID)
		}
		return nil, fmt.Errorf("%w: failed to update status: %w", ErrInternal, err)
	}

	a.Status = to
	a.UpdatedAt = now
	switch to {
	case domain.ParkingApproved:
		a.ApprovedAt = &now
	case domain.ParkingRejected:
		a.RejectedAt = &now
	case domain.ParkingReleased:
		a.ReleasedAt = &now
	}

	return a, nil
}

func (s *Service) announce(ctx context.Context, a *domain.ParkingAllocation) {
	s.logger.Info("Parking: allocation id=%d is now %s", a.ID, a.Status)
	s.metrics.RecordParkingTransition(string(a.Status))
	s.events.Publish(ctx, events.ParkingKey(a.Status), events.NewParkingEvent(a, s.timeProvider.Now()))
}
