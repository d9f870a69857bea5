package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/cutsheet/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertTicket(ctx context.Context, tx db.DBTX, id string) error {
	if _, err := tx.ExecContext(ctx, `INSERT INTO tickets (id, number, customer, created_at, updated_at)
		VALUES (?, ?, 'Acme', 'x', 'x')`, id, "T-"+id); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `INSERT INTO ticket_work_items (ticket_id, work_type, position, quantity, unit)
		VALUES (?, 'CORE_DRILLING', 0, 4, 'holes')`, id)
	return err
}

func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertTicket(ctx, tx, "k1")
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countRows(t, database, "tickets"))
	assert.Equal(t, 1, countRows(t, database, "ticket_work_items"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)
	errBoom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertTicket(ctx, tx, "k2"); err != nil {
			return err
		}
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	assert.Zero(t, countRows(t, database, "tickets"))
	assert.Zero(t, countRows(t, database, "ticket_work_items"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertTicket(ctx, tx, "k3")
			panic("boom")
		})
	})

	assert.Zero(t, countRows(t, database, "tickets"))
}

func TestWithinTx_ConstraintFailureRollsBackTicket(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertTicket(ctx, tx, "k4"); err != nil {
			return err
		}
		// Same work type twice on one ticket violates the primary key.
		_, err := tx.ExecContext(ctx, `INSERT INTO ticket_work_items (ticket_id, work_type, position, quantity, unit)
			VALUES ('k4', 'CORE_DRILLING', 1, 2, 'holes')`)
		return err
	})
	require.Error(t, err)

	assert.Zero(t, countRows(t, database, "tickets"))
}
