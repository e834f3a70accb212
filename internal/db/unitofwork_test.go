package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/telos/internal/db"
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

func driverWeight(t *testing.T, database *sql.DB, id string) (int, bool) {
	t.Helper()
	var w int
	err := database.QueryRow(`SELECT weight FROM drivers WHERE id = ?`, id).Scan(&w)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false
	}
	require.NoError(t, err)
	return w, true
}

func insertDriver(ctx context.Context, tx db.DBTX, id string, weight int) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO drivers (id, name, weight) VALUES (?, ?, ?)`, id, "Driver "+id, weight)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertDriver(ctx, tx, "d1", 8); err != nil {
			return err
		}
		return insertDriver(ctx, tx, "d2", 7)
	})
	require.NoError(t, err)

	w, found := driverWeight(t, database, "d2")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, 7, w)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)
	sentinel := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertDriver(ctx, tx, "d1", 8); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, found := driverWeight(t, database, "d1")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnConstraintViolation(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertDriver(ctx, tx, "d1", 8); err != nil {
			return err
		}
		return insertDriver(ctx, tx, "d2", 42)
	})
	require.Error(t, err)

	_, found := driverWeight(t, database, "d1")
	assert.False(t, found, "earlier writes must be rolled back")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertDriver(ctx, tx, "d1", 8)
			panic("boom")
		})
	})

	_, found := driverWeight(t, database, "d1")
	assert.False(t, found, "row should not exist after panic rollback")
}
