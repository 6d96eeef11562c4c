package schema

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.sql")
	ddl := "CREATE TABLE user (id INTEGER PRIMARY KEY);\n"
	if err := os.WriteFile(path, []byte(ddl), 0644); err != nil {
		t.Fatalf("failed to write schema: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ddl {
		t.Errorf("got %q, want %q", got, ddl)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "schema.sql"))
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want an fs.ErrNotExist error", err)
	}
}

func TestLoadRepoSchema(t *testing.T) {
	got, err := Load(filepath.Join("..", "..", "schema.sql"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == "" {
		t.Error("repository schema is empty")
	}
}
