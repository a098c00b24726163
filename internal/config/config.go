// Package config resolves the settings of the childsec CLI.
//
// Values come from three layers, lowest precedence first:
//
//  1. an optional dotenv file (".env" in the working directory, or the
//     file named by CHILDSEC_ENV_FILE); it never overrides variables that
//     are already set in the environment
//  2. environment variables
//  3. command-line flags registered with BindFlags
//
// # Environment Variables
//
//	CHILDSEC_DRIVER        → --driver        (sqlite or postgres; default sqlite)
//	CHILDSEC_DATA_DIR      → --data-dir      (default "data")
//	CHILDSEC_DB_FILE       → --db-file       (default "child_security_complete.db")
//	CHILDSEC_DATABASE_URL  → --database-url  (falls back to DATABASE_URL)
//	CHILDSEC_LOG_LEVEL     → --log-level     (debug, info, warn, error)
//	CHILDSEC_LOG_FORMAT    → --log-format    (text or json)
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/maloquacious/childsec/internal/store"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultEnvFile is read when CHILDSEC_ENV_FILE is unset.
const DefaultEnvFile = ".env"

// Config holds the resolved settings.
type Config struct {
	Driver      string
	DataDir     string
	DBFile      string
	DatabaseURL string
	LogLevel    string
	LogFormat   string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Driver:    DriverSQLite,
		DataDir:   store.GetStorePath(),
		DBFile:    store.DefaultDBFile,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads the dotenv file, if any, and applies the environment on top of
// the defaults. A missing dotenv file is not an error; a malformed one is.
func Load() (Config, error) {
	envFile := os.Getenv("CHILDSEC_ENV_FILE")
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) || explicit {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return FromEnv(), nil
}

// FromEnv applies CHILDSEC_* variables on top of the defaults.
func FromEnv() Config {
	cfg := Default()
	setFromEnv(&cfg.Driver, "CHILDSEC_DRIVER")
	setFromEnv(&cfg.DataDir, "CHILDSEC_DATA_DIR")
	setFromEnv(&cfg.DBFile, "CHILDSEC_DB_FILE")
	setFromEnv(&cfg.DatabaseURL, "DATABASE_URL")
	setFromEnv(&cfg.DatabaseURL, "CHILDSEC_DATABASE_URL")
	setFromEnv(&cfg.LogLevel, "CHILDSEC_LOG_LEVEL")
	setFromEnv(&cfg.LogFormat, "CHILDSEC_LOG_FORMAT")
	return cfg
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

// BindFlags registers the datastore flags on fs, using the current values as
// defaults so that a flag only wins when it is given.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Driver, "driver", c.Driver, "datastore driver: sqlite or postgres")
	fs.StringVar(&c.DataDir, "data-dir", c.DataDir, "directory holding the sqlite database")
	fs.StringVar(&c.DBFile, "db-file", c.DBFile, "sqlite database file name")
	fs.StringVar(&c.DatabaseURL, "database-url", c.DatabaseURL, "postgres connection URL")
}

// BindLogFlags registers the logging flags on fs.
func (c *Config) BindLogFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: text or json")
}

// Validate checks that the settings describe a usable datastore.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.DBFile == "" {
			return errors.New("db file required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("database URL required for the postgres driver (use --database-url or CHILDSEC_DATABASE_URL)")
		}
	default:
		return fmt.Errorf("invalid driver %q: must be sqlite or postgres", c.Driver)
	}
	return nil
}

// DBPath returns the sqlite database path.
func (c Config) DBPath() string {
	return store.GetDBPath(c.DataDir, c.DBFile)
}
