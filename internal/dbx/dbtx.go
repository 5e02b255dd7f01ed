// Package dbx provides tiny DB abstractions shared by repositories:
// a minimal interface (DBTX) implemented by both *sql.DB and *sql.Tx,
// a helper to run functions inside a transaction, and a builder for
// partial UPDATE statements.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// DBTX is the subset of database/sql used by our repos.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}

// Set is one column assignment of an UPDATE.
type Set struct {
	Column string
	Value  any
}

// UpdateByID renders "UPDATE table SET c1 = $1, ... WHERE id = $n" with
// positional placeholders understood by both pgx and sqlite. ok is false when
// sets is empty, in which case there is nothing to execute.
func UpdateByID(table string, sets []Set, id string) (query string, args []any, ok bool) {
	if len(sets) == 0 {
		return "", nil, false
	}

	parts := make([]string, 0, len(sets))
	args = make([]any, 0, len(sets)+1)
	for i, s := range sets {
		parts = append(parts, fmt.Sprintf("%s = $%d", s.Column, i+1))
		args = append(args, s.Value)
	}
	args = append(args, id)

	query = fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(parts, ", "), len(args))
	return query, args, true
}
