package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/andrisyafri/facilops/internal/db"
)

// FailOnNthExecUoW is a unit-of-work whose transactions fail on the Nth
// write. Rollback tests use it to break a multi-table operation partway
// through and assert nothing was persisted.
//
// Writes are counted from 1 per transaction. Reads pass through.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	faulty := &execCounter{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, faulty); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

// execCounter counts ExecContext calls and returns the injected error when
// the counter reaches failOn.
type execCounter struct {
	db.DBTX
	calls  atomic.Int32
	failOn int32
	err    error
}

func (c *execCounter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if c.calls.Add(1) == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
