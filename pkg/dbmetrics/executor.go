package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и их обёрток
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor активная транзакция
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txKey struct{}

// WithTx кладёт транзакцию в контекст
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTx достаёт транзакцию из контекста
func GetTx(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txKey{}).(TxExecutor)
	return tx, ok && tx != nil
}

// IsInTransaction проверяет, выполняется ли запрос внутри транзакции
// Репозитории используют это, чтобы добавить FOR UPDATE к выборкам
func IsInTransaction(ctx context.Context) bool {
	_, ok := GetTx(ctx)
	return ok
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := GetTx(ctx); ok {
		return tx
	}
	return db
}
