package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-AmenityBooking/pkg/psqlbuilder"
)

const table = "facility_settings"

var settingsColumns = []string{
	"facility",
	"capacity",
	"advance_notice_days",
	"cancel_cutoff_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий переопределений настроек объектов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает переопределения объекта
// Если записи нет - ErrSettingsNotFound, объект работает со встроенными значениями
func (r *Repository) Get(ctx context.Context, facility domain.FacilityID) (*domain.FacilitySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From(table).
		Where(squirrel.Eq{"facility": facility}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	settings, err := scanSettings(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return settings, nil
}

// List получает переопределения всех объектов
func (r *Repository) List(ctx context.Context) ([]*domain.FacilitySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From(table).
		OrderBy("facility ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.FacilitySettings, 0)
	for rows.Next() {
		s, err := scanSettings(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Upsert создает или полностью заменяет переопределения объекта
// nil-поле сбрасывает переопределение к встроенному значению
func (r *Repository) Upsert(ctx context.Context, settings *domain.FacilitySettings) (*domain.FacilitySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"facility",
			"capacity",
			"advance_notice_days",
			"cancel_cutoff_minutes",
		).
		Values(
			settings.Facility,
			settings.Capacity,
			settings.AdvanceNoticeDays,
			settings.CancelCutoffMinutes,
		).
		Suffix("ON CONFLICT (facility) DO UPDATE SET " +
			"capacity = EXCLUDED.capacity, " +
			"advance_notice_days = EXCLUDED.advance_notice_days, " +
			"cancel_cutoff_minutes = EXCLUDED.cancel_cutoff_minutes, " +
			"updated_at = NOW() " +
			"RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}

// Delete удаляет переопределения объекта
func (r *Repository) Delete(ctx context.Context, facility domain.FacilityID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"facility": facility}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSettings(row rowScanner) (*domain.FacilitySettings, error) {
	var (
		s                                     domain.FacilitySettings
		capacity, advanceNotice, cancelCutoff sql.NullInt64
		createdAt, updatedAt                  sql.NullTime
	)

	err := row.Scan(
		&s.Facility,
		&capacity,
		&advanceNotice,
		&cancelCutoff,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Capacity = nullInt(capacity)
	s.AdvanceNoticeDays = nullInt(advanceNotice)
	s.CancelCutoffMinutes = nullInt(cancelCutoff)
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
