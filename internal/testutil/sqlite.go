package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bodylab/trainlog/internal/db"
)

// NewTestDB opens an in-memory history database with migrations applied and
// closes it when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening in-memory history db")
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// FailingWriteUoW runs transactions through the SQLite unit of work but
// returns Err from the FailOn-th write (1-based). Reads are not counted.
type FailingWriteUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

var _ db.UnitOfWork = (*FailingWriteUoW)(nil)

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingWrites{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type failingWrites struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.writes++
	if f.writes == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
