// Package db provides the shared Postgres pool abstraction and bulk helpers.
package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
)

// Pool is the subset of pgxpool.Pool used by the stores. pgxmock's pool
// implements the same surface, so every store is unit-testable without a
// live database.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// UnavailablePool is a Pool whose every operation fails. It backs the stores
// when no database is configured, pushing the services onto their demo data.
type UnavailablePool struct{}

var errUnavailable = eris.New("db: no database configured")

func (UnavailablePool) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errUnavailable
}

func (UnavailablePool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errUnavailable
}

func (UnavailablePool) QueryRow(context.Context, string, ...any) pgx.Row {
	return unavailableRow{}
}

func (UnavailablePool) Begin(context.Context) (pgx.Tx, error) {
	return nil, errUnavailable
}

func (UnavailablePool) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, errUnavailable
}

type unavailableRow struct{}

func (unavailableRow) Scan(...any) error { return errUnavailable }

// Open connects a pgx pool to the Supabase Postgres database and verifies
// the connection.
func Open(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, eris.New("db: database URL is required")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, eris.Wrap(err, "db: open pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "db: ping")
	}

	return pool, nil
}
