package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/alexanderramin/cutsheet/internal/db"
)

// NewTestDB opens a migrated in-memory ticket store that is closed when the
// test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// FailingWriteUoW runs transactions like the real unit of work but returns
// Err from the first ExecContext whose statement mentions Table. Reads are
// never intercepted.
type FailingWriteUoW struct {
	DB    *sql.DB
	Table string
	Err   error
}

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &failingWrites{DBTX: tx, table: u.Table, err: u.Err}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingWrites struct {
	db.DBTX
	table string
	err   error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.table) {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
