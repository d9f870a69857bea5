package db

import (
	"context"
	"database/sql"
)

// DBTX is the handle the ticket repository reads and writes through. Lookups
// and listings use the *sql.DB directly; a save uses the *sql.Tx so the
// ticket row, its work item rows and its number land together.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
