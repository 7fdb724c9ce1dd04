// Package dbmetrics - обертка над *sql.DB, снимающая метрики запросов и пула соединений
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DefaultPoolStatsInterval период опроса sql.DBStats
const DefaultPoolStatsInterval = 15 * time.Second

// Recorder приемник метрик (реализуется *metrics.Metrics)
type Recorder interface {
	ObserveQuery(operation string, duration time.Duration, err error)
	SetPoolStats(stats sql.DBStats)
}

// DB *sql.DB с замером времени выполнения запросов
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает соединение без фонового сбора статистики пула
func Wrap(db *sql.DB, recorder Recorder) *DB {
	return &DB{db: db, recorder: recorder}
}

// WrapWithDefault оборачивает соединение и запускает опрос статистики пула до закрытия stopCh
func WrapWithDefault(db *sql.DB, recorder Recorder, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, recorder)
	go wrapped.collectPoolStats(DefaultPoolStatsInterval, stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.recorder.SetPoolStats(d.db.Stats())
	for {
		select {
		case <-ticker.C:
			d.recorder.SetPoolStats(d.db.Stats())
		case <-stopCh:
			return
		}
	}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.recorder.ObserveQuery(operation(query), time.Since(start), err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.recorder.ObserveQuery(operation(query), time.Since(start), err)
	return rows, err
}

// QueryRowContext ошибка *sql.Row известна только после Scan, поэтому фиксируется nil
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.recorder.ObserveQuery(operation(query), time.Since(start), nil)
	return row
}

// BeginTx начинает транзакцию на исходном соединении
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	return d.db.BeginTx(ctx, opts)
}

// operation первое ключевое слово запроса: SELECT, INSERT, UPDATE, DELETE
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}
