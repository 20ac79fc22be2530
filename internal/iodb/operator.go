// Package iodb connects GNrating to the PostgreSQL database used
// for exported rating runs.
package iodb

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/gnames/gnrating/pkg/config"
	"github.com/gnames/gnrating/pkg/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxOperator implements db.Operator interface using
// pgxpool for connection pooling.
type pgxOperator struct {
	pool *pgxpool.Pool
}

// NewPgxOperator creates a new database operator
// (without connecting).
func NewPgxOperator() db.Operator {
	return &pgxOperator{}
}

// Connect opens a small connection pool to the PostgreSQL database
// that stores rating runs.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	fail := func(err error) error {
		return ConnectionError(cfg.Host, cfg.Port, cfg.Database, cfg.User, err)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn(cfg))
	if err != nil {
		return fail(err)
	}
	// export writes three tables, a small pool is enough
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fail(err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return fail(err)
	}

	p.pool = pool
	return nil
}

// dsn builds a connection URL, escaping user and password.
func dsn(cfg *config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Database,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// Pool returns the underlying pgxpool.Pool.
func (p *pgxOperator) Pool() *pgxpool.Pool {
	return p.pool
}

// TableExists reports whether the public schema has the table.
func (p *pgxOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	q := `SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name = $1)`
	ok, err := p.exists(ctx, q, tableName)
	if err != nil && p.pool != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return ok, err
}

// HasTables reports whether the public schema has any table.
func (p *pgxOperator) HasTables(ctx context.Context) (bool, error) {
	q := `SELECT EXISTS (
		SELECT FROM information_schema.tables
		WHERE table_schema = 'public')`
	ok, err := p.exists(ctx, q)
	if err != nil && p.pool != nil {
		return false, TableCheckError(err)
	}
	return ok, err
}

func (p *pgxOperator) exists(
	ctx context.Context,
	query string,
	args ...any,
) (bool, error) {
	if p.pool == nil {
		return false, NotConnectedError()
	}
	var res bool
	err := p.pool.QueryRow(ctx, query, args...).Scan(&res)
	return res, err
}

// DropAllTables drops all tables in the public schema.
func (p *pgxOperator) DropAllTables(ctx context.Context) error {
	if p.pool == nil {
		return NotConnectedError()
	}

	query := `
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public'
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return QueryTablesError(err)
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return QueryTablesError(err)
	}

	for _, table := range tables {
		dropSQL := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE",
			pgx.Identifier{table}.Sanitize())
		if _, err := p.pool.Exec(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}

	return nil
}
