package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable the package reads for the duration of the test.
// t.Setenv registers the restore, which also undoes what godotenv sets.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CHILDSEC_ENV_FILE", "CHILDSEC_DRIVER", "CHILDSEC_DATA_DIR", "CHILDSEC_DB_FILE",
		"CHILDSEC_DATABASE_URL", "DATABASE_URL", "CHILDSEC_LOG_LEVEL", "CHILDSEC_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, filepath.Join("data", "child_security_complete.db"), cfg.DBPath())
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Variables(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHILDSEC_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://fallback")
	t.Setenv("CHILDSEC_DATABASE_URL", "postgres://primary")
	t.Setenv("CHILDSEC_LOG_LEVEL", " debug ")

	cfg := FromEnv()
	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, "postgres://primary", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnv_DatabaseURLFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://fallback")

	assert.Equal(t, "postgres://fallback", FromEnv().DatabaseURL)
}

func TestBindFlags_OverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHILDSEC_DATA_DIR", "from-env")
	t.Setenv("CHILDSEC_DB_FILE", "env.db")

	cfg := FromEnv()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	cfg.BindLogFlags(fs)
	require.NoError(t, fs.Parse([]string{"--data-dir", "from-flag", "--log-format", "json"}))

	assert.Equal(t, "from-flag", cfg.DataDir)
	assert.Equal(t, "env.db", cfg.DBFile, "unset flag keeps the env value")
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("CHILDSEC_DRIVER=postgres\nCHILDSEC_DATABASE_URL=postgres://dotenv\nCHILDSEC_DB_FILE=dotenv.db\n"), 0o644))
	t.Setenv("CHILDSEC_ENV_FILE", envFile)
	t.Setenv("CHILDSEC_DB_FILE", "env.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Driver)
	assert.Equal(t, "postgres://dotenv", cfg.DatabaseURL)
	assert.Equal(t, "env.db", cfg.DBFile, "environment wins over the dotenv file")
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err, "missing default .env is fine")
	assert.Equal(t, Default(), cfg)

	t.Setenv("CHILDSEC_ENV_FILE", "does-not-exist.env")
	_, err = Load()
	assert.Error(t, err, "missing explicit env file is an error")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"sqlite", Config{Driver: DriverSQLite, DBFile: "x.db"}, ""},
		{"sqlite no file", Config{Driver: DriverSQLite}, "db file required"},
		{"postgres", Config{Driver: DriverPostgres, DatabaseURL: "postgres://x"}, ""},
		{"postgres no url", Config{Driver: DriverPostgres}, "database URL required"},
		{"unknown", Config{Driver: "mysql"}, `invalid driver "mysql"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
