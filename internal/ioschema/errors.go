package ioschema

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/pkg/errcode"
)

// NotConnectedError is returned when the export schema is touched
// before the operator connected to PostgreSQL.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Export schema needs a database connection, run Connect first",
		Err:  errors.New("database operator is not connected"),
	}
}

// GORMConnectionError wraps a failure to open GORM on top of the
// connection pool.
func GORMConnectionError(err error) error {
	msg := `Cannot open the export database with GORM

<em>Check:</em>
  - the database section of config.yaml
  - GNRATING_DATABASE_* environment variables`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("gorm open: %w", err),
	}
}

// CreateSchemaError wraps a failure to create the tables of
// rating_runs, person_ratings and product_ratings.
func CreateSchemaError(err error) error {
	msg := `Cannot create tables for rating runs

The database user needs CREATE permission on the public schema.`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("create export tables: %w", err),
	}
}

// MigrateSchemaError wraps a failure to bring the export tables up
// to date.
func MigrateSchemaError(err error) error {
	msg := `Cannot update tables for rating runs

Stored runs stay untouched. If the tables were changed by hand,
recreate them with <em>gnrating create --force</em>.`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("migrate export tables: %w", err),
	}
}
