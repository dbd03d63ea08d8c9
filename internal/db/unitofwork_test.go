package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/promotrack/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func facultyName(t *testing.T, database *sql.DB) string {
	t.Helper()
	var name string
	require.NoError(t, database.QueryRow(`SELECT name FROM faculty WHERE id = ?`, db.DefaultFacultyID).Scan(&name))
	return name
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `UPDATE faculty SET name = ? WHERE id = ?`, "Dr. Committed", db.DefaultFacultyID)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, "Dr. Committed", facultyName(t, database))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `UPDATE faculty SET name = ? WHERE id = ?`, "Dr. Rolled", db.DefaultFacultyID); err != nil {
			return err
		}
		return errors.New("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.Equal(t, "", facultyName(t, database))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, `UPDATE faculty SET name = ? WHERE id = ?`, "Dr. Panic", db.DefaultFacultyID)
			panic("boom")
		})
	})

	assert.Equal(t, "", facultyName(t, database))
}
