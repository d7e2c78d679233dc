package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-AmenityBooking/pkg/dbmetrics"
)

const (
	// DefaultMaxAttempts сколько раз повторяем сериализуемую транзакцию
	DefaultMaxAttempts = 3

	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
)

var (
	// ErrBeginTx ошибка открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")
	// ErrCommitTx ошибка фиксации транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// TxBeginner интерфейс для начала транзакций (реализуется *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции внутри транзакции,
// прокидывая её через контекст (см. dbmetrics.GetExecutor)
type TransactionManager struct {
	db          TxBeginner
	maxAttempts int
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db, maxAttempts: DefaultMaxAttempts}
}

// WithMaxAttempts задаёт число попыток для DoSerializable
func (m *TransactionManager) WithMaxAttempts(n int) *TransactionManager {
	if n > 0 {
		m.maxAttempts = n
	}
	return m
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции
// При конфликте сериализации (40001) или дедлоке (40P01) транзакция повторяется целиком
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		err = m.run(ctx, opts, fn)
		if err == nil || !IsRetryable(err) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
	}
	return err
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов: переиспользуем внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}

	return nil
}

// IsRetryable проверяет, что ошибка - конфликт сериализации или дедлок
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqSerializationFailure || pqErr.Code == pqDeadlockDetected
}
