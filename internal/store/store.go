package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultDBFile     = "db.sqlite3"
	DefaultSchemaFile = "schema.sql"

	// UserTable holds Discord to Last.fm account links.
	UserTable = "user"
	// LegacyUserTable is the pre-rename name of UserTable.
	LegacyUserTable = "discordLastFMUser"
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

// GetStorePath returns the path to the datastore directory.
// The database lives in the current working directory.
func GetStorePath() string {
	return "."
}

// GetDBPath returns the full path to the database file.
func GetDBPath(storePath string) string {
	return filepath.Join(storePath, DefaultDBFile)
}
