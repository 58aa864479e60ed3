package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/workout-api/internal/platform/logger"
)

// TxFn is the unit of work run by RunInTransaction. Stores used inside it
// must be bound to tx with WithTx.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction runs fn in a transaction on db. The transaction commits
// when fn returns nil and rolls back when fn returns an error or panics;
// a panic is re-raised after the rollback.
//
// fn's error is returned unchanged so callers can match store and domain
// sentinels. Failures of the transaction itself wrap ErrTransactionFailed,
// and also the context error when the request was canceled or timed out.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: not started: %w", ErrTransactionFailed, err)
	}

	start := time.Now()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", slog.String("error", err.Error()))
		return txFailure(ctx, "begin", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := rollback(tx); rbErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.String("error", rbErr.Error()),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic", slog.Any("panic", p))
			}
			// ALLOW-PANIC: re-raised after rollback
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := rollback(tx); rbErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", rbErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf("%w: rollback: %v (original error: %w)", ErrTransactionFailed, rbErr, err)
		}
		log.Debug("rolled back transaction",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", slog.String("error", err.Error()))
		return txFailure(ctx, "commit", err)
	}

	log.Debug("transaction committed", slog.Duration("elapsed", time.Since(start)))
	return nil
}

// rollback treats a transaction already ended by database/sql, which
// happens when the context is canceled mid-transaction, as rolled back.
func rollback(tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

// txFailure wraps a begin or commit failure. If ctx is done, its error is
// part of the chain so callers can tell a canceled request from a database
// fault.
func txFailure(ctx context.Context, stage string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %s: %w: %v", ErrTransactionFailed, stage, ctxErr, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrTransactionFailed, stage, err)
}
