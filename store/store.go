// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store is the data-access layer for voters, candidates and votes.
// A Store returned by New runs each call on the connection pool; the
// Store passed to an InTx callback runs every call in one transaction.
type Store struct {
	conn *sql.DB // nil for transaction-scoped stores
	q    DBTX
}

func New(conn *sql.DB) *Store {
	return &Store{conn: conn, q: conn}
}

// InTx runs fn in a single transaction with the driver's default options.
// The transaction commits when fn returns nil and rolls back otherwise.
// Calling InTx on a transaction-scoped Store joins the existing transaction.
func (s *Store) InTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.InTxOptions(ctx, nil, fn)
}

// InTxOptions is InTx with explicit isolation and read-only settings.
// opts is ignored when joining an existing transaction.
func (s *Store) InTxOptions(ctx context.Context, opts *sql.TxOptions, fn func(tx *Store) error) error {
	if s.conn == nil {
		return fn(s)
	}

	tx, err := s.conn.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&Store{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}
