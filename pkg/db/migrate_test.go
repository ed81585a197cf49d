package db

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestMigrationFilesExist verifies that migration files are present
func TestMigrationFilesExist(t *testing.T) {
	migrationsDir := "../../migrations"

	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		t.Fatalf("migrations directory does not exist: %s", migrationsDir)
	}

	expectedFiles := []string{
		"000001_create_submissions.up.sql",
		"000001_create_submissions.down.sql",
	}

	for _, filename := range expectedFiles {
		filePath := filepath.Join(migrationsDir, filename)
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			t.Errorf("migration file does not exist: %s", filePath)
		}
	}
}

// TestMigrationSchemaCoversSubmissionTables verifies the schema creates the
// tables the repository writes to
func TestMigrationSchemaCoversSubmissionTables(t *testing.T) {
	content, err := os.ReadFile("../../migrations/000001_create_submissions.up.sql")
	if err != nil {
		t.Fatalf("failed to read migration file: %v", err)
	}

	sql := string(content)
	for _, table := range []string{"contact_inquiries", "event_quotes"} {
		if !strings.Contains(sql, table) {
			t.Errorf("migration does not create table %s", table)
		}
	}
}
