package db

import (
	"context"

	"github.com/gnames/gnrating/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines basic management operations of the export
// database. It exposes pgxpool.Pool so the exporter can use CopyFrom
// for bulk inserts. Schema creation is done by GORM AutoMigrate.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public schema.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema.
	DropAllTables(ctx context.Context) error
}
