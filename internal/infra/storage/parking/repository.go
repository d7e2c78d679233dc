package parking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-AmenityBooking/pkg/psqlbuilder"
)

const (
	table             = "parking_allocations"
	pqUniqueViolation = "23505"
)

var allocationColumns = []string{
	"id",
	"user_id",
	"user_name",
	"apartment_number",
	"slot_id",
	"slot_name",
	"vehicle_number",
	"vehicle_type",
	"status",
	"approved_at",
	"rejected_at",
	"released_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий заявок на парковочные места
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория парковки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockTable берёт транзакционную advisory-блокировку на всю парковку
// У парковки нет даты, поэтому все заявки сериализуются одной блокировкой
func (r *Repository) LockTable(ctx context.Context) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", table); err != nil {
		return fmt.Errorf("%w: LockTable - acquire advisory lock: %w", ErrExecQuery, err)
	}

	return nil
}

// Create создает заявку в статусе pending
func (r *Repository) Create(ctx context.Context, allocation *domain.ParkingAllocation) (*domain.ParkingAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"user_id",
			"user_name",
			"apartment_number",
			"slot_id",
			"slot_name",
			"vehicle_number",
			"vehicle_type",
			"status",
		).
		Values(
			allocation.UserID,
			allocation.UserName,
			allocation.ApartmentNumber,
			allocation.SlotID,
			allocation.SlotName,
			allocation.VehicleNumber,
			allocation.VehicleType,
			allocation.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&allocation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			if pqErr.Constraint == "parking_allocations_user_active_uq" {
				return nil, ErrUserHasAllocation
			}
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	allocation.CreatedAt = createdAt.Time
	allocation.UpdatedAt = updatedAt.Time

	return allocation, nil
}

// GetByID получает заявку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ParkingAllocation, error) {
	selectBuilder := psqlbuilder.Select(allocationColumns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.getOne(ctx, "GetByID", selectBuilder)
}

// GetActiveByUser получает активную (pending/approved) заявку пользователя
func (r *Repository) GetActiveByUser(ctx context.Context, userID int64) (*domain.ParkingAllocation, error) {
	selectBuilder := psqlbuilder.Select(allocationColumns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"status": domain.ActiveParkingStatuses})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.getOne(ctx, "GetActiveByUser", selectBuilder)
}

// ListActive получает все активные заявки
// Внутри транзакции строки блокируются
func (r *Repository) ListActive(ctx context.Context) ([]*domain.ParkingAllocation, error) {
	selectBuilder := psqlbuilder.Select(allocationColumns...).
		From(table).
		Where(squirrel.Eq{"status": domain.ActiveParkingStatuses}).
		OrderBy("slot_id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.list(ctx, "ListActive", selectBuilder)
}

// List получает заявки (для администратора), сначала новые
// status == nil - все заявки
func (r *Repository) List(ctx context.Context, status *domain.ParkingStatus) ([]*domain.ParkingAllocation, error) {
	selectBuilder := psqlbuilder.Select(allocationColumns...).From(table)

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	selectBuilder = selectBuilder.OrderBy("created_at DESC", "id DESC")

	return r.list(ctx, "List", selectBuilder)
}

// UpdateStatus переводит заявку из статуса from в статус to
// Если статус уже другой - ErrStatusChanged
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.ParkingStatus, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(table).
		Set("status", to)

	switch to {
	case domain.ParkingApproved:
		updateBuilder = updateBuilder.Set("approved_at", at)
	case domain.ParkingRejected:
		updateBuilder = updateBuilder.Set("rejected_at", at)
	case domain.ParkingReleased:
		updateBuilder = updateBuilder.Set("released_at", at)
	}

	query, args, err := updateBuilder.
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusChanged
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, method string, selectBuilder squirrel.SelectBuilder) (*domain.ParkingAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	allocation, err := scanAllocation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAllocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan allocation: %w", ErrScanRow, method, err)
	}

	return allocation, nil
}

func (r *Repository) list(ctx context.Context, method string, selectBuilder squirrel.SelectBuilder) ([]*domain.ParkingAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, method, err)
	}
	defer rows.Close()

	allocations := make([]*domain.ParkingAllocation, 0)
	for rows.Next() {
		allocation, err := scanAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		allocations = append(allocations, allocation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return allocations, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAllocation(row rowScanner) (*domain.ParkingAllocation, error) {
	var (
		a                                  domain.ParkingAllocation
		approvedAt, rejectedAt, releasedAt sql.NullTime
		createdAt, updatedAt               sql.NullTime
	)

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.UserName,
		&a.ApartmentNumber,
		&a.SlotID,
		&a.SlotName,
		&a.VehicleNumber,
		&a.VehicleType,
		&a.Status,
		&approvedAt,
		&rejectedAt,
		&releasedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.ApprovedAt = nullTime(approvedAt)
	a.RejectedAt = nullTime(rejectedAt)
	a.ReleasedAt = nullTime(releasedAt)
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
