package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/internal/facility"
	settingsRepo "github.com/m04kA/SMC-AmenityBooking/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AmenityBooking/internal/service/settings/models"
)

// Service сервис правил объектов: встроенные адаптеры + переопределения администратора
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Adapter возвращает адаптер объекта с применёнными переопределениями
// Если переопределений нет, используются встроенные значения
func (s *Service) Adapter(ctx context.Context, id domain.FacilityID) (facility.Adapter, error) {
	a, overrides, err := s.load(ctx, id)
	if err != nil {
		return facility.Adapter{}, err
	}
	return a.WithSettings(overrides), nil
}

// Get возвращает действующие правила объекта
// Публичный метод - доступен всем
func (s *Service) Get(ctx context.Context, id domain.FacilityID) (*models.FacilityResponse, error) {
	a, overrides, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := models.FromAdapter(a.WithSettings(overrides), overrides)
	return &resp, nil
}

// List возвращает каталог всех объектов
func (s *Service) List(ctx context.Context) (*models.FacilityListResponse, error) {
	all, err := s.settingsRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list settings: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	byFacility := make(map[domain.FacilityID]*domain.FacilitySettings, len(all))
	for _, o := range all {
		byFacility[o.Facility] = o
	}

	adapters := facility.All()
	resp := &models.FacilityListResponse{
		Facilities: make([]models.FacilityResponse, 0, len(adapters)),
	}
	for _, a := range adapters {
		overrides := byFacility[a.ID]
		resp.Facilities = append(resp.Facilities, models.FromAdapter(a.WithSettings(overrides), overrides))
	}

	return resp, nil
}

// Update заменяет переопределения объекта
// Доступно только администратору (проверяется в middleware)
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.FacilityResponse, error) {
	s.logger.Info("Update: facility=%s, capacity=%v, advance=%v, cutoff=%v",
		req.Facility, req.Capacity, req.AdvanceNoticeDays, req.CancelCutoffMinutes)

	a, err := facility.Lookup(req.Facility)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFacilityNotFound, err)
	}

	if err := validateOverrides(a, req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	settings := req.ToDomainSettings()

	// Пустой запрос - сбрасываем переопределения
	if settings.IsEmpty() {
		if err := s.settingsRepo.Delete(ctx, req.Facility); err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("Update: failed to reset settings for %s: %v", req.Facility, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		resp := models.FromAdapter(a, nil)
		return &resp, nil
	}

	saved, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("Update: failed to save settings for %s: %v", req.Facility, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings for %s saved", req.Facility)

	resp := models.FromAdapter(a.WithSettings(saved), saved)
	return &resp, nil
}

func (s *Service) load(ctx context.Context, id domain.FacilityID) (facility.Adapter, *domain.FacilitySettings, error) {
	a, err := facility.Lookup(id)
	if err != nil {
		return facility.Adapter{}, nil, fmt.Errorf("%w: %w", ErrFacilityNotFound, err)
	}

	if !a.IsTimeSlot() {
		return a, nil, nil
	}

	overrides, err := s.settingsRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return a, nil, nil
		}
		s.logger.Error("Adapter: failed to get settings for %s: %v", id, err)
		return facility.Adapter{}, nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	return a, overrides, nil
}

func validateOverrides(a facility.Adapter, req *models.UpdateSettingsRequest) error {
	if !a.IsTimeSlot() {
		return fmt.Errorf("%w: %s has no configurable settings", ErrInvalidInput, a.ID)
	}

	if req.Capacity != nil {
		if a.Capacity.Kind != facility.Shared {
			return fmt.Errorf("%w: capacity of %s is exclusive and cannot be changed", ErrInvalidInput, a.ID)
		}
		if *req.Capacity < 1 || *req.Capacity > domain.MaxCapacityOverride {
			return fmt.Errorf("%w: capacity must be between 1 and %d", ErrInvalidInput, domain.MaxCapacityOverride)
		}
	}

	if req.AdvanceNoticeDays != nil {
		if *req.AdvanceNoticeDays < 0 || *req.AdvanceNoticeDays > domain.MaxAdvanceNoticeDays {
			return fmt.Errorf("%w: advanceNoticeDays must be between 0 and %d", ErrInvalidInput, domain.MaxAdvanceNoticeDays)
		}
	}

	if req.CancelCutoffMinutes != nil {
		if a.Cancellation.Kind == facility.CancelAnytime {
			return fmt.Errorf("%w: %s can be cancelled at any time", ErrInvalidInput, a.ID)
		}
		if *req.CancelCutoffMinutes < 0 || *req.CancelCutoffMinutes > domain.MaxCancelCutoffMinutes {
			return fmt.Errorf("%w: cancelCutoffMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxCancelCutoffMinutes)
		}
	}

	return nil
}
