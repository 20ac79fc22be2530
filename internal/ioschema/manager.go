// Package ioschema implements schema.Manager for the export
// database. This is an impure I/O package that wraps GORM
// AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/gnrating/pkg/db"
	"github.com/gnames/gnrating/pkg/schema"
)

// manager implements the schema.Manager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new schema.Manager.
func NewManager(op db.Operator) schema.Manager {
	return &manager{operator: op}
}

// Create creates the export schema using GORM AutoMigrate.
func (m *manager) Create(ctx context.Context) error {
	gormDB, err := openGORM(ctx, m.operator)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	slog.Info("Export schema created",
		"tables", len(schema.AllModels()))
	return nil
}

// Migrate updates the export schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(ctx context.Context) error {
	gormDB, err := openGORM(ctx, m.operator)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}

	slog.Info("Export schema migrated")
	return nil
}
