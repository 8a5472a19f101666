package db_test

import (
	"path/filepath"
	"testing"

	"github.com/nutrijourney/nutri/internal/db"
)

func TestApplyMigrationsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "nutrijourney.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}

	var migrationCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 2 {
		t.Fatalf("expected 2 migration versions, got %d", migrationCount)
	}

	for _, table := range []string{"users", "food_log", "foods"} {
		var count int
		if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count); err != nil {
			t.Fatalf("check %s table: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected %s table to exist", table)
		}
	}
}

func TestEnsureCatalogWaterColumnRepairsExternalTable(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "nutrijourney.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	// Simulate a catalog seeded by an external tool before the water column
	// existed.
	if _, err := sqldb.Exec(`
CREATE TABLE foods (
  name TEXT NOT NULL,
  calories REAL NOT NULL DEFAULT 0,
  protein REAL NOT NULL DEFAULT 0,
  fat REAL NOT NULL DEFAULT 0,
  carbs REAL NOT NULL DEFAULT 0
);
INSERT INTO foods(name, calories, protein, fat, carbs) VALUES('apple', 52, 0.3, 0.2, 14);
`); err != nil {
		t.Fatalf("seed legacy foods table: %v", err)
	}

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	var waterColCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM pragma_table_info('foods') WHERE name = 'water'`).Scan(&waterColCount); err != nil {
		t.Fatalf("check foods water column: %v", err)
	}
	if waterColCount != 1 {
		t.Fatalf("expected water column in foods table")
	}

	// Second apply must not try to add the column again.
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("re-apply migrations: %v", err)
	}
}
