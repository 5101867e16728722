package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pressroom/news-service/internal/observability"
)

// InstrumentedDBTX wraps a DBTX and records query duration and failure
// metrics for every call. Repositories stay metrics-agnostic; the decorator
// is applied at wiring time when metrics collection is enabled.
type InstrumentedDBTX struct {
	next    DBTX
	metrics *observability.Metrics
}

// Compile-time check that *InstrumentedDBTX implements DBTX.
var _ DBTX = (*InstrumentedDBTX)(nil)

// NewInstrumentedDBTX decorates next with query metrics.
func NewInstrumentedDBTX(next DBTX, metrics *observability.Metrics) *InstrumentedDBTX {
	return &InstrumentedDBTX{next: next, metrics: metrics}
}

// Exec executes a query without returning any rows.
func (d *InstrumentedDBTX) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	start := time.Now()
	tag, err := d.next.Exec(ctx, sql, args...)
	d.metrics.RecordQuery("exec", time.Since(start).Seconds(), err)
	return tag, err
}

// Query executes a query that returns rows.
func (d *InstrumentedDBTX) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	start := time.Now()
	rows, err := d.next.Query(ctx, sql, args...)
	d.metrics.RecordQuery("query", time.Since(start).Seconds(), err)
	return rows, err
}

// QueryRow executes a query that is expected to return at most one row.
// pgx defers execution until Scan, so the observation covers the Scan call.
func (d *InstrumentedDBTX) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	start := time.Now()
	return &instrumentedRow{
		row: d.next.QueryRow(ctx, sql, args...),
		record: func(err error) {
			// An absent row is an outcome, not a query failure.
			if errors.Is(err, pgx.ErrNoRows) {
				err = nil
			}
			d.metrics.RecordQuery("query_row", time.Since(start).Seconds(), err)
		},
	}
}

type instrumentedRow struct {
	row    pgx.Row
	record func(err error)
}

func (r *instrumentedRow) Scan(dest ...interface{}) error {
	err := r.row.Scan(dest...)
	r.record(err)
	return err
}
