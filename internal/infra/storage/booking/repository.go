package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-AmenityBooking/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"user_id",
	"user_name",
	"apartment_number",
	"booking_date",
	"start_time",
	"end_time",
	"duration_hours",
	"slot_label",
	"party_size",
	"event_type",
	"meeting_purpose",
	"status",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований объектов с почасовыми слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockDate берёт транзакционную advisory-блокировку на (объект, дата)
// Все записи в один и тот же день объекта выполняются последовательно.
// Вне транзакции блокировка бессмысленна, поэтому вызывается только внутри txmanager
func (r *Repository) LockDate(ctx context.Context, facility domain.FacilityID, date time.Time) error {
	table, err := TableName(facility)
	if err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	key := table + ":" + date.Format(domain.DateFormat)
	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("%w: LockDate - acquire advisory lock: %w", ErrExecQuery, err)
	}

	return nil
}

// Create создает новое бронирование
// Нарушение частичных уникальных индексов превращается в ErrSlotTaken / ErrDuplicateBooking
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	table, err := TableName(booking.Facility)
	if err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"user_id",
			"user_name",
			"apartment_number",
			"booking_date",
			"start_time",
			"end_time",
			"duration_hours",
			"slot_label",
			"party_size",
			"event_type",
			"meeting_purpose",
			"status",
		).
		Values(
			booking.UserID,
			booking.UserName,
			booking.ApartmentNumber,
			booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
			booking.DurationHours,
			booking.SlotLabel,
			booking.PartySize,
			booking.EventType,
			booking.MeetingPurpose,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, facility domain.FacilityID, id int64) (*domain.Booking, error) {
	table, err := TableName(facility)
	if err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку (отмена)
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...), facility)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования объекта с фильтрацией
//
// Примеры использования:
//
// 1. Активные бронирования на дату (пересчёт занятости):
//    filter := domain.BookingsFilter{Date: &date}
//
// 2. Активные бронирования пользователя:
//    filter := domain.BookingsFilter{UserID: &userID}
//
// 3. Все бронирования, включая отменённые (админ):
//    filter := domain.BookingsFilter{IncludeCancelled: true}
func (r *Repository) List(ctx context.Context, facility domain.FacilityID, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	table, err := TableName(facility)
	if err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From(table)

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	if filter.Date != nil {
		// Для конкретной даты сортируем по времени начала
		selectBuilder = selectBuilder.OrderBy("start_time ASC", "id ASC")
	} else {
		// Иначе сначала новые
		selectBuilder = selectBuilder.OrderBy("booking_date DESC", "start_time DESC", "id DESC")
	}

	// Внутри транзакции создания бронирования блокируем строки дня
	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows, facility)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Cancel переводит бронирование в статус cancelled
// Отмена необратима: строка остаётся в таблице и больше не учитывается в занятости
func (r *Repository) Cancel(ctx context.Context, facility domain.FacilityID, id int64, cancelledAt time.Time) error {
	table, err := TableName(facility)
	if err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCannotCancel
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner, facility domain.FacilityID) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		slotLabel            sql.NullString
		eventType            sql.NullString
		meetingPurpose       sql.NullString
		cancelledAt          sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.UserName,
		&booking.ApartmentNumber,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.DurationHours,
		&slotLabel,
		&booking.PartySize,
		&eventType,
		&meetingPurpose,
		&booking.Status,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Facility = facility
	booking.SlotLabel = nullString(slotLabel)
	booking.EventType = nullString(eventType)
	booking.MeetingPurpose = nullString(meetingPurpose)
	if cancelledAt.Valid {
		t := cancelledAt.Time
		booking.CancelledAt = &t
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// mapUniqueViolation распознаёт нарушения частичных уникальных индексов
// Индексы по пользователю в миграциях содержат "_user_" в имени
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != pqUniqueViolation {
		return nil
	}
	if strings.Contains(pqErr.Constraint, "_user_") {
		return fmt.Errorf("%w: %s", ErrDuplicateBooking, pqErr.Constraint)
	}
	return fmt.Errorf("%w: %s", ErrSlotTaken, pqErr.Constraint)
}
