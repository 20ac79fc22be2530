package schema

import (
	"context"
)

// Manager creates and updates the export schema.
// Schema management is idempotent, it is safe to run it many times.
type Manager interface {
	// Create builds the export tables. Existing tables are kept.
	Create(ctx context.Context) error

	// Migrate updates the export tables to the current models.
	Migrate(ctx context.Context) error
}
