package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultDataDir = "data"
	DefaultDBFile  = "child_security_complete.db"
)

// CheckExists verifies if the datastore file exists at the given path.
// Returns true if the store exists, false otherwise.
func CheckExists(dbPath string) (bool, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check store existence: %w", err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("datastore path is a directory, expected file: %s", dbPath)
	}
	return true, nil
}

// GetStorePath returns the datastore directory, relative to the working directory.
func GetStorePath() string {
	return DefaultDataDir
}

// GetDBPath returns the full path to the database file.
// An empty file name selects DefaultDBFile.
func GetDBPath(storePath, file string) string {
	if file == "" {
		file = DefaultDBFile
	}
	return filepath.Join(storePath, file)
}

// EnsureDir creates the datastore directory and its parents if needed.
func EnsureDir(storePath string) error {
	info, err := os.Stat(storePath)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("datastore directory is a file: %s", storePath)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check datastore directory: %w", err)
	}
	if err := os.MkdirAll(storePath, 0o755); err != nil {
		return fmt.Errorf("failed to create datastore directory: %w", err)
	}
	return nil
}
