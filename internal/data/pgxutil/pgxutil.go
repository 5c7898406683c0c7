package pgxutil

// Package pgxutil bridges the database/sql pool to native pgx connections so
// repositories can use pgx row collection helpers.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// WithPgxConn acquires a *pgx.Conn via the stdlib bridge and executes fn with it.
func WithPgxConn(ctx context.Context, db *sql.DB, fn func(*pgx.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("get conn from pool: %w", err)
	}
	defer func() {
		// connection close failure is best-effort and ignored
		_ = conn.Close()
	}()

	return conn.Raw(func(dc any) error {
		std, ok := dc.(*stdlib.Conn)
		if !ok {
			return errors.New("unexpected driver connection type; expected *stdlib.Conn")
		}
		return fn(std.Conn())
	})
}

// WithPgxTx runs fn within a pgx transaction on a bridged connection.
func WithPgxTx(ctx context.Context, db *sql.DB, fn func(pgx.Tx) error) error {
	return WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin pgx tx: %w", err)
		}
		defer func() {
			if rerr := tx.Rollback(ctx); rerr != nil && !errors.Is(rerr, pgx.ErrTxClosed) {
				// rollback failure after commit is safe to ignore
				_ = rerr
			}
		}()
		if err := fn(tx); err != nil {
			return err
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit pgx tx: %w", err)
		}
		return nil
	})
}
