package postgres

import (
	"strings"
	"testing"
)

func TestRunMigrationsMissingPath(t *testing.T) {
	err := RunMigrations("postgres://localhost:5432/fishtrade", "/nonexistent/migrations")
	if err == nil {
		t.Fatal("expected error for missing migrations directory")
	}
	if !strings.Contains(err.Error(), "/nonexistent/migrations") {
		t.Fatalf("expected error to name the migrations path, got %v", err)
	}
}

func TestRunMigrationsBadDatabaseURL(t *testing.T) {
	if err := RunMigrations("bogus://nowhere", t.TempDir()); err == nil {
		t.Fatal("expected error for unsupported database scheme")
	}
}
