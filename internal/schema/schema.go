// Package schema reads the DDL that defines the wurlitzer database.
package schema

import (
	"fmt"
	"os"
)

// Load returns the contents of the schema file at path as-is.
// The text is not parsed or validated; the database engine does that when it runs.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read schema %s: %w", path, err)
	}
	return string(data), nil
}
