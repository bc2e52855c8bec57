// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const defaultTxTimeout = 60 * time.Second

type lazyTxContextKey struct{}

// lazyTx begins its transaction on the first statement of a WithTx scope.
// All statements of a scope share one connection and must not overlap:
// callers that fan out check InTx and run one statement at a time. mu only
// guards the lazy begin and the final commit or rollback.
type lazyTx struct {
	mu sync.Mutex

	db     *sql.DB
	tx     TxInterface
	cancel context.CancelFunc
}

func (lt *lazyTx) get() (TxInterface, error) {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	if lt.tx != nil {
		return lt.tx, nil
	}

	// Detached from the caller's context: a canceled step is rolled back by
	// WithTx, not torn down by the driver mid-statement.
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

// finish commits when commit is true and rolls back otherwise. A scope that
// never issued a statement has nothing to finish.
func (lt *lazyTx) finish(commit bool) error {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	if lt.cancel != nil {
		defer lt.cancel()
	}
	if lt.tx == nil {
		return nil
	}

	if commit {
		return lt.tx.Commit()
	}

	if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

func lazyTxFromContext(ctx context.Context) *lazyTx {
	if lt, ok := ctx.Value(lazyTxContextKey{}).(*lazyTx); ok {
		return lt
	}
	return nil
}

// InTx reports whether ctx carries a WithTx scope.
func InTx(ctx context.Context) bool {
	return lazyTxFromContext(ctx) != nil
}

// WithTx runs fn in a transaction scope: every Statement built from the
// context handed to fn runs in one transaction, committed when fn returns nil
// and rolled back otherwise. A WithTx nested inside another joins the outer
// transaction.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	ctx, span := d.tracer.Start(ctx, "db.DBClient.WithTx")
	defer span.End()

	lt := &lazyTx{db: d.db}

	if err := fn(context.WithValue(ctx, lazyTxContextKey{}, lt)); err != nil {
		if rErr := lt.finish(false); rErr != nil {
			d.logger.Errorf("failed to rollback transaction: %v", rErr)
		}
		return err
	}

	if err := lt.finish(true); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// failedRunner fails every statement with err, so that a scope whose
// transaction could not begin never writes outside of it.
type failedRunner struct {
	err error
}

type failedRow struct {
	err error
}

func (r failedRow) Scan(...any) error { return r.err }

func (f failedRunner) Exec(string, ...any) (sql.Result, error) { return nil, f.err }
func (f failedRunner) Query(string, ...any) (*sql.Rows, error) { return nil, f.err }
func (f failedRunner) QueryRow(string, ...any) sq.RowScanner { return failedRow(f) }
func (f failedRunner) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, f.err
}
func (f failedRunner) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, f.err
}
func (f failedRunner) QueryRowContext(context.Context, string, ...any) sq.RowScanner {
	return failedRow(f)
}
