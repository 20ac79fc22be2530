package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gnrating/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{"config dir", config.ConfigDir, filepath.Join(tempHome, ".config", "gnrating")},
		{"cache dir", config.CacheDir, filepath.Join(tempHome, ".cache", "gnrating")},
		{"log dir", config.LogDir, filepath.Join(tempHome, ".local", "share", "gnrating", "logs")},
		{"config file", config.ConfigFilePath, filepath.Join(tempHome, ".config", "gnrating", "config.yaml")},
		{"policy file", config.PolicyFilePath, filepath.Join(tempHome, ".config", "gnrating", "policy.yaml")},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, "products", cfg.Source.ProductsTable)
	assert.Equal(t, "persons", cfg.Source.PersonsTable)
	assert.Equal(t, 2, cfg.Source.FirstRow)

	assert.Equal(t, 20, cfg.Rating.CollabThreshold)
	assert.Equal(t, 2, cfg.Rating.MinProducts)
	assert.True(t, cfg.Rating.DropDuplicates)
	assert.Equal(t, 0, cfg.Rating.Year)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "gnrating", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10_000, cfg.Database.BatchSize)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)
}

func TestSourcePath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/rossi")})
	assert.Equal(t, "/home/rossi/.local/share/gnrating/rating.sqlite", cfg.SourcePath())

	cfg.Update([]config.Option{config.OptSourcePath(" /data/2020.sqlite ")})
	assert.Equal(t, "/data/2020.sqlite", cfg.SourcePath())
}

func TestStringOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   func(string) config.Option
		get   func(*config.Config) string
		input string
		res   string
	}{
		{
			"db host", config.OptDatabaseHost,
			func(c *config.Config) string { return c.Database.Host },
			"  db.example.com ", "db.example.com",
		},
		{
			"empty db host", config.OptDatabaseHost,
			func(c *config.Config) string { return c.Database.Host },
			"  ", "localhost",
		},
		{
			"products table", config.OptSourceProductsTable,
			func(c *config.Config) string { return c.Source.ProductsTable },
			"pubs_2020", "pubs_2020",
		},
		{
			"persons table", config.OptSourcePersonsTable,
			func(c *config.Config) string { return c.Source.PersonsTable },
			"", "persons",
		},
		{
			"ssl mode", config.OptDatabaseSSLMode,
			func(c *config.Config) string { return c.Database.SSLMode },
			"REQUIRE", "require",
		},
		{
			"bad ssl mode", config.OptDatabaseSSLMode,
			func(c *config.Config) string { return c.Database.SSLMode },
			"sometimes", "disable",
		},
		{
			"log level", config.OptLogLevel,
			func(c *config.Config) string { return c.Log.Level },
			"Debug", "debug",
		},
		{
			"bad log format", config.OptLogFormat,
			func(c *config.Config) string { return c.Log.Format },
			"xml", "json",
		},
		{
			"log destination", config.OptLogDestination,
			func(c *config.Config) string { return c.Log.Destination },
			"stderr", "stderr",
		},
		{
			"sub-area", config.OptRatingSubArea,
			func(c *config.Config) string { return c.Rating.SubArea },
			" C ", "c",
		},
		{
			"bad sub-area", config.OptRatingSubArea,
			func(c *config.Config) string { return c.Rating.SubArea },
			"d", "",
		},
		{
			"person", config.OptRatingPerson,
			func(c *config.Config) string { return c.Rating.Person },
			" ROSSI PAOLO ", "ROSSI PAOLO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt(tt.input)})
			assert.Equal(t, tt.res, tt.get(cfg))
		})
	}
}

func TestIntOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   func(int) config.Option
		get   func(*config.Config) int
		input int
		res   int
	}{
		{
			"db port", config.OptDatabasePort,
			func(c *config.Config) int { return c.Database.Port },
			5433, 5433,
		},
		{
			"negative db port", config.OptDatabasePort,
			func(c *config.Config) int { return c.Database.Port },
			-1, 5432,
		},
		{
			"batch size", config.OptDatabaseBatchSize,
			func(c *config.Config) int { return c.Database.BatchSize },
			0, 10_000,
		},
		{
			"first row", config.OptSourceFirstRow,
			func(c *config.Config) int { return c.Source.FirstRow },
			1, 1,
		},
		{
			"collab threshold", config.OptRatingCollabThreshold,
			func(c *config.Config) int { return c.Rating.CollabThreshold },
			50, 50,
		},
		{
			"zero min products", config.OptRatingMinProducts,
			func(c *config.Config) int { return c.Rating.MinProducts },
			0, 2,
		},
		{
			"year", config.OptRatingYear,
			func(c *config.Config) int { return c.Rating.Year },
			2018, 2018,
		},
		{
			"zero year", config.OptRatingYear,
			func(c *config.Config) int { return c.Rating.Year },
			0, 0,
		},
		{
			"negative year", config.OptRatingYear,
			func(c *config.Config) int { return c.Rating.Year },
			-2018, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt(tt.input)})
			assert.Equal(t, tt.res, tt.get(cfg))
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseHost("first.host.com"),
		config.OptRatingDropDuplicates(false),
		config.OptDatabaseHost("second.host.com"),
	})
	assert.Equal(t, "second.host.com", cfg.Database.Host)
	assert.False(t, cfg.Rating.DropDuplicates)
	assert.Equal(t, "postgres", cfg.Database.Password)
}

func TestToOptions(t *testing.T) {
	t.Run("round trip of persistent fields", func(t *testing.T) {
		original := config.New()
		original.Update([]config.Option{
			config.OptSourcePath("/data/rating.sqlite"),
			config.OptSourceProductsTable("prod"),
			config.OptSourcePersonsTable("pers"),
			config.OptSourceFirstRow(1),
			config.OptRatingCollabThreshold(30),
			config.OptRatingMinProducts(3),
			config.OptRatingDropDuplicates(false),
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePassword("secret"),
			config.OptDatabaseBatchSize(500),
			config.OptLogFormat("text"),
		})

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Source, newCfg.Source)
		assert.Equal(t, original.Rating, newCfg.Rating)
		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Log, newCfg.Log)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptRatingYear(2019),
			config.OptRatingSubArea("b"),
			config.OptRatingPerson("ROSSI PAOLO"),
		})

		newCfg := config.New()
		newCfg.Update(cfg.ToOptions())

		assert.Equal(t, "", newCfg.HomeDir)
		assert.Equal(t, 0, newCfg.Rating.Year)
		assert.Equal(t, "", newCfg.Rating.SubArea)
		assert.Equal(t, "", newCfg.Rating.Person)
	})
}

func TestPersistentSections(t *testing.T) {
	data, err := yaml.Marshal(config.New())
	require.NoError(t, err)

	var sections map[string]any
	require.NoError(t, yaml.Unmarshal(data, &sections))
	delete(sections, "homedir")

	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t,
		[]string{"source", "rating", "database", "log"}, keys)
}
