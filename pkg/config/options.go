package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of records to process per batch.
// Used for bulk inserts during export.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptSourcePath sets the SQLite file with products and persons.
func OptSourcePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Source Path", s) {
			c.Source.Path = s
		}
	}
}

// OptSourceProductsTable sets the table with products.
func OptSourceProductsTable(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Products Table", s) {
			c.Source.ProductsTable = s
		}
	}
}

// OptSourcePersonsTable sets the table with persons.
func OptSourcePersonsTable(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Persons Table", s) {
			c.Source.PersonsTable = s
		}
	}
}

// OptSourceFirstRow sets the row index of the first record.
func OptSourceFirstRow(i int) Option {
	return func(c *Config) {
		if isValidInt("First Row", i) {
			c.Source.FirstRow = i
		}
	}
}

// OptRatingCollabThreshold sets the author count above which a
// product counts as a large collaboration.
func OptRatingCollabThreshold(i int) Option {
	return func(c *Config) {
		if isValidInt("Collab Threshold", i) {
			c.Rating.CollabThreshold = i
		}
	}
}

// OptRatingMinProducts sets the number of products needed to be
// ranked.
func OptRatingMinProducts(i int) Option {
	return func(c *Config) {
		if isValidInt("Min Products", i) {
			c.Rating.MinProducts = i
		}
	}
}

// OptRatingDropDuplicates sets whether undeclared duplicates are
// removed before summing points.
func OptRatingDropDuplicates(b bool) Option {
	return func(c *Config) {
		c.Rating.DropDuplicates = b
	}
}

// OptRatingYear limits the rating to one publication year.
// Zero leaves the rating over all years.
// Runtime-only field - not in ToOptions().
func OptRatingYear(i int) Option {
	return func(c *Config) {
		if i == 0 {
			return
		}
		if isValidInt("Year", i) {
			c.Rating.Year = i
		}
	}
}

// OptRatingSubArea limits the output to one sub-area.
// Valid values: "a", "b", "c".
// Runtime-only field - not in ToOptions().
func OptRatingSubArea(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Rating.SubArea", s) {
			c.Rating.SubArea = s
		}
	}
}

// OptRatingPerson selects a person for a per-product breakdown.
// Runtime-only field - not in ToOptions().
func OptRatingPerson(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Person", s) {
			c.Rating.Person = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
