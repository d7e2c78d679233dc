package parking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AmenityBooking/internal/domain"
	"github.com/m04kA/SMC-AmenityBooking/pkg/dbmetrics"
)

func setupMock(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock
}

func allocationRow(rows *sqlmock.Rows, id, userID int64, slotID string, status domain.ParkingStatus) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, userID, "Asha", "B-204", slotID, "Ground Floor - A1", "KA01AB1234", "Car",
		string(status), nil, nil, nil, now, now)
}

func TestCreate(t *testing.T) {
	repo, _, mock := setupMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO parking_allocations (user_id,user_name,apartment_number,slot_id,slot_name,vehicle_number,vehicle_type,status) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id, created_at, updated_at")).
		WithArgs(int64(7), "Asha", "B-204", "P001", "Ground Floor - A1", "KA01AB1234", "Car", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(3), now, now))

	a, err := repo.Create(context.Background(), &domain.ParkingAllocation{
		UserID:          7,
		UserName:        "Asha",
		ApartmentNumber: "B-204",
		SlotID:          "P001",
		SlotName:        "Ground Floor - A1",
		VehicleNumber:   "KA01AB1234",
		VehicleType:     domain.VehicleCar,
		Status:          domain.ParkingPending,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolations(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{constraint: "parking_allocations_slot_active_uq", want: ErrSlotTaken},
		{constraint: "parking_allocations_user_active_uq", want: ErrUserHasAllocation},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			repo, _, mock := setupMock(t)
			mock.ExpectQuery("INSERT INTO parking_allocations").
				WillReturnError(&pq.Error{Code: "23505", Constraint: tt.constraint})

			_, err := repo.Create(context.Background(), &domain.ParkingAllocation{SlotID: "P001"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetActiveByUser(t *testing.T) {
	repo, _, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM parking_allocations WHERE user_id = $1 AND status IN ($2,$3)")).
		WithArgs(int64(7), "pending", "approved").
		WillReturnRows(allocationRow(sqlmock.NewRows(allocationColumns), 3, 7, "P001", domain.ParkingApproved))

	a, err := repo.GetActiveByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.ParkingApproved, a.Status)
	assert.Equal(t, domain.VehicleCar, a.VehicleType)
	assert.Nil(t, a.ApprovedAt)
}

func TestGetActiveByUser_NotFound(t *testing.T) {
	repo, _, mock := setupMock(t)

	mock.ExpectQuery("FROM parking_allocations").WillReturnRows(sqlmock.NewRows(allocationColumns))

	_, err := repo.GetActiveByUser(context.Background(), 7)
	assert.ErrorIs(t, err, ErrAllocationNotFound)
}

func TestListActive_LocksInsideTransaction(t *testing.T) {
	repo, db, mock := setupMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE status IN ($1,$2) ORDER BY slot_id ASC FOR UPDATE")).
		WithArgs("pending", "approved").
		WillReturnRows(allocationRow(
			allocationRow(sqlmock.NewRows(allocationColumns), 1, 7, "P001", domain.ParkingPending),
			2, 8, "P002", domain.ParkingApproved))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	assert.Len(t, active, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_FilterByStatus(t *testing.T) {
	repo, _, mock := setupMock(t)
	status := domain.ParkingPending

	mock.ExpectQuery(regexp.QuoteMeta("FROM parking_allocations WHERE status = $1 ORDER BY created_at DESC, id DESC")).
		WithArgs("pending").
		WillReturnRows(sqlmock.NewRows(allocationColumns))

	list, err := repo.List(context.Background(), &status)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateStatus(t *testing.T) {
	repo, _, mock := setupMock(t)
	at := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE parking_allocations SET status = $1, approved_at = $2, updated_at = NOW() WHERE id = $3 AND status = $4")).
		WithArgs("approved", at, int64(3), "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 3, domain.ParkingPending, domain.ParkingApproved, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_Changed(t *testing.T) {
	repo, _, mock := setupMock(t)

	mock.ExpectExec("UPDATE parking_allocations SET status = \\$1, released_at").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 3, domain.ParkingApproved, domain.ParkingReleased, time.Now())
	assert.ErrorIs(t, err, ErrStatusChanged)
}

func TestLockTable(t *testing.T) {
	repo, _, mock := setupMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("parking_allocations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.LockTable(context.Background()))
}
