package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// SQLExecutor is satisfied by both *sql.DB and *sql.Tx.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ErrQueryCanceled is returned when Postgres cancels a statement, usually
// because the request context expired.
var ErrQueryCanceled = errors.New("database query canceled")

// wrapQueryError adds the operation name and, for Postgres errors, the
// SQLSTATE condition name.
func wrapQueryError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "57014" { // query_canceled
			return fmt.Errorf("%s: %w", op, ErrQueryCanceled)
		}
		return fmt.Errorf("%s: %s (%s): %w", op, pqErr.Code.Name(), pqErr.Message, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// collectRows scans every row with scan and closes rows.
func collectRows[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()
	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
