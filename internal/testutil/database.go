package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the embedded goose migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Canonical transaction cache
		CREATE TABLE IF NOT EXISTS transactions (
			id VARCHAR(64) NOT NULL PRIMARY KEY,
			created_date TEXT NOT NULL,
			type VARCHAR(10) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL,
			subcategory TEXT NOT NULL,
			amount REAL NOT NULL,
			account_id VARCHAR(64) NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_transactions_created_date ON transactions (created_date);

		-- Account cache
		CREATE TABLE IF NOT EXISTS accounts (
			id VARCHAR(64) NOT NULL PRIMARY KEY,
			display_name VARCHAR(100) NOT NULL,
			account_type VARCHAR(20) NOT NULL,
			ownership_type VARCHAR(20) NOT NULL,
			currency_code VARCHAR(3) NOT NULL,
			balance_base_units INTEGER NOT NULL
		);

		-- Persisted settings
		CREATE TABLE IF NOT EXISTS settings (
			key VARCHAR(50) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}
