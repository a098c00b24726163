package main

import (
	"github.com/maloquacious/childsec/internal/config"
	"github.com/maloquacious/childsec/internal/logger"
	"github.com/maloquacious/childsec/internal/store"
	"github.com/maloquacious/childsec/internal/store/postgres"
	"github.com/maloquacious/childsec/internal/store/sqlite"
)

// newStore builds the store selected by cfg. dataDir is the directory the
// store lives in, or empty when it is not on the local filesystem.
func newStore(cfg *config.Config, log logger.Logger) (s store.Store, dataDir string, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	if cfg.Driver == config.DriverPostgres {
		return postgres.New(cfg.DatabaseURL, log), "", nil
	}
	return sqlite.New(cfg.DBPath(), log), cfg.DataDir, nil
}
