// Package config provides configuration management for GNrating.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Source: path, products_table, persons_table, first_row
//   - Rating: collab_threshold, min_products, drop_duplicates
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Rating.Year, Rating.SubArea, Rating.Person (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNRATING_ prefix with underscores for nesting:
//
//	GNRATING_SOURCE_PATH=~/data/products.sqlite
//	GNRATING_RATING_COLLAB_THRESHOLD=20
//	GNRATING_DATABASE_HOST=localhost
//	GNRATING_LOG_LEVEL=info
package config

// Config represents the complete GNrating configuration.
type Config struct {
	// Source describes where products and persons are read from.
	Source SourceConfig `mapstructure:"source" yaml:"source"`

	// Rating contains settings of the aggregation.
	Rating RatingConfig `mapstructure:"rating" yaml:"rating"`

	// Database contains PostgreSQL connection settings of the export
	// target.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// SourceConfig points to the SQLite file with the product and person
// tables.
type SourceConfig struct {
	// Path is the SQLite file. Empty means
	// ~/.local/share/gnrating/rating.sqlite.
	Path string `mapstructure:"path" yaml:"path"`

	// ProductsTable has one row per product and staff author.
	ProductsTable string `mapstructure:"products_table" yaml:"products_table"`

	// PersonsTable has one row per staff member.
	PersonsTable string `mapstructure:"persons_table" yaml:"persons_table"`

	// FirstRow is the row index given to the first record. Curated
	// lists of duplicates and errata refer to these indices. The
	// default of 2 matches a spreadsheet with a header line.
	FirstRow int `mapstructure:"first_row" yaml:"first_row"`
}

// RatingConfig contains settings of the aggregation.
type RatingConfig struct {
	// CollabThreshold is the number of authors above which a product
	// is counted as a large collaboration. Statistics only.
	CollabThreshold int `mapstructure:"collab_threshold" yaml:"collab_threshold"`

	// MinProducts is the smallest number of valid products needed to
	// enter the ranking.
	MinProducts int `mapstructure:"min_products" yaml:"min_products"`

	// DropDuplicates removes undeclared duplicates of a person before
	// summing the points.
	DropDuplicates bool `mapstructure:"drop_duplicates" yaml:"drop_duplicates"`

	// Year restricts the rating to one publication year, 0 means all.
	Year int `mapstructure:"year" yaml:"-"`

	// SubArea restricts the output to one sub-area.
	SubArea string `mapstructure:"sub_area" yaml:"-"`

	// Person selects one person for a per-product breakdown.
	Person string `mapstructure:"person" yaml:"-"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows sent per CopyFrom call during
	// export.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Source: SourceConfig{
			ProductsTable: "products",
			PersonsTable:  "persons",
			FirstRow:      2,
		},
		Rating: RatingConfig{
			CollabThreshold: 20,
			MinProducts:     2,
			DropDuplicates:  true,
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gnrating",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
