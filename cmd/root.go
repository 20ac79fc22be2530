/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnrating/internal/iofs"
	"github.com/gnames/gnrating/internal/iologger"
	app "github.com/gnames/gnrating/pkg"
	"github.com/gnames/gnrating/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnrating",
		Short:   "Rates and ranks the publications of a physics department",
		Long: `GNrating scores every publication of the staff of a department,
sums the points of each person and ranks people within their
sub-area (a, b or c).

Records come from an SQLite file with a products table and a persons
table. Curated decisions (duplicate and errata rows, manual points,
missing impact factors) live in policy.yaml.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNRATING_*)
  3. Config file (~/.config/gnrating/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (rating.min_products →
  GNRATING_RATING_MIN_PRODUCTS).

  Examples:
    GNRATING_SOURCE_PATH            SQLite file with the records
    GNRATING_RATING_MIN_PRODUCTS    Products needed to be ranked
    GNRATING_DATABASE_HOST          PostgreSQL host for export
    GNRATING_LOG_LEVEL              Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnrating version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnrating")

	rootCmd.PersistentFlags().StringP("source", "s", "",
		"SQLite file with products and persons tables")

	rootCmd.AddCommand(
		getRankCmd(),
		getCheckCmd(),
		getDuplicatesCmd(),
		getCreateCmd(),
		getMigrateCmd(),
		getExportCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsurePolicyFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if src, _ := cmd.Flags().GetString("source"); src != "" {
		cfg.Update([]config.Option{config.OptSourcePath(src)})
	}

	// Reconfigure logging with user's settings
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"source", cfg.SourcePath(),
	)

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	// booleans missing from an older config.yaml keep their defaults
	v.SetDefault("rating.drop_duplicates", config.New().Rating.DropDuplicates)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNRATING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Source configuration
	v.BindEnv("source.path", "GNRATING_SOURCE_PATH")
	v.BindEnv("source.products_table", "GNRATING_SOURCE_PRODUCTS_TABLE")
	v.BindEnv("source.persons_table", "GNRATING_SOURCE_PERSONS_TABLE")
	v.BindEnv("source.first_row", "GNRATING_SOURCE_FIRST_ROW")

	// Rating configuration
	v.BindEnv("rating.collab_threshold", "GNRATING_RATING_COLLAB_THRESHOLD")
	v.BindEnv("rating.min_products", "GNRATING_RATING_MIN_PRODUCTS")
	v.BindEnv("rating.drop_duplicates", "GNRATING_RATING_DROP_DUPLICATES")

	// Database configuration
	v.BindEnv("database.host", "GNRATING_DATABASE_HOST")
	v.BindEnv("database.port", "GNRATING_DATABASE_PORT")
	v.BindEnv("database.user", "GNRATING_DATABASE_USER")
	v.BindEnv("database.password", "GNRATING_DATABASE_PASSWORD")
	v.BindEnv("database.database", "GNRATING_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "GNRATING_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "GNRATING_DATABASE_BATCH_SIZE")

	// Log configuration
	v.BindEnv("log.level", "GNRATING_LOG_LEVEL")
	v.BindEnv("log.format", "GNRATING_LOG_FORMAT")
	v.BindEnv("log.destination", "GNRATING_LOG_DESTINATION")

	v.AutomaticEnv()
}
