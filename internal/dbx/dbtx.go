// Package dbx holds the tiny database/sql abstraction shared by local
// storage code.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql that repositories use, implemented by
// both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
