package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DefaultStatsInterval период сбора статистики connection pool
const DefaultStatsInterval = 15 * time.Second

// Recorder приёмник метрик запросов
// Реализуется *metrics.Metrics
type Recorder interface {
	RecordDBQuery(operation string, duration time.Duration, err error)
	SetDBStats(stats sql.DBStats)
}

// DB обёртка над *sql.DB, замеряющая время выполнения запросов
// recorder может быть nil - тогда метрики не пишутся
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает *sql.DB без фонового сбора статистики пула
func Wrap(db *sql.DB, recorder Recorder) *DB {
	return &DB{db: db, recorder: recorder}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики пула
// до закрытия stopCh
func WrapWithDefault(db *sql.DB, recorder Recorder, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, recorder)
	if recorder != nil {
		go wrapped.collectStats(DefaultStatsInterval, stopCh)
	}
	return wrapped
}

// Unwrap возвращает исходный *sql.DB (нужен для миграций)
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, row.Err())
	return row
}

// BeginTx открывает транзакцию, запросы внутри которой тоже замеряются
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observeOp("begin", start, err)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

func (d *DB) collectStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.recorder.SetDBStats(d.db.Stats())
		case <-stopCh:
			return
		}
	}
}

func (d *DB) observe(query string, start time.Time, err error) {
	d.observeOp(operationName(query), start, err)
}

func (d *DB) observeOp(op string, start time.Time, err error) {
	if d.recorder == nil {
		return
	}
	if err == sql.ErrNoRows {
		err = nil
	}
	d.recorder.RecordDBQuery(op, time.Since(start), err)
}

// Tx транзакция с замером запросов
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.parent.observe(query, start, row.Err())
	return row
}

func (t *Tx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.parent.observeOp("commit", start, err)
	return err
}

func (t *Tx) Rollback() error {
	err := t.tx.Rollback()
	if err == sql.ErrTxDone {
		return nil
	}
	return err
}

// operationName первое ключевое слово запроса: select, insert, update...
func operationName(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
