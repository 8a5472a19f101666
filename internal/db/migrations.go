package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS users (
  username TEXT PRIMARY KEY,
  password TEXT NOT NULL,
  full_name TEXT NOT NULL DEFAULT '',
  age INTEGER NOT NULL DEFAULT 0 CHECK(age >= 0),
  weight REAL NOT NULL DEFAULT 0 CHECK(weight >= 0),
  height REAL NOT NULL DEFAULT 0 CHECK(height >= 0),
  gender TEXT NOT NULL DEFAULT '',
  activity_level REAL NOT NULL DEFAULT 1 CHECK(activity_level >= 0)
);

CREATE TABLE IF NOT EXISTS food_log (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL,
  food_name TEXT NOT NULL,
  calories REAL NOT NULL DEFAULT 0,
  protein REAL NOT NULL DEFAULT 0,
  fat REAL NOT NULL DEFAULT 0,
  carbs REAL NOT NULL DEFAULT 0,
  water REAL NOT NULL DEFAULT 0,
  consumption_date TEXT NOT NULL DEFAULT '',
  consumption_day TEXT NOT NULL DEFAULT '',
  FOREIGN KEY(username) REFERENCES users(username)
);

CREATE INDEX IF NOT EXISTS idx_food_log_username ON food_log(username);
`,
	},
	{
		version: 2,
		name:    "food_catalog",
		sql: `
CREATE TABLE IF NOT EXISTS foods (
  name TEXT NOT NULL,
  calories REAL NOT NULL DEFAULT 0,
  protein REAL NOT NULL DEFAULT 0,
  fat REAL NOT NULL DEFAULT 0,
  carbs REAL NOT NULL DEFAULT 0,
  water REAL
);
`,
	},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	if err := EnsureCatalogWaterColumn(db); err != nil {
		return err
	}

	return nil
}

// EnsureCatalogWaterColumn adds the water column to the foods reference
// catalog when it is missing. The catalog is seeded externally and may
// predate the column, so version bookkeeping alone cannot cover it; the
// check is additive and safe to run on every startup.
func EnsureCatalogWaterColumn(db *sql.DB) error {
	var count int
	err := db.QueryRow(`SELECT COUNT(1) FROM pragma_table_info('foods') WHERE name = 'water'`).Scan(&count)
	if err != nil {
		return fmt.Errorf("inspect foods columns: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := db.Exec(`ALTER TABLE foods ADD COLUMN water REAL`); err != nil {
		return fmt.Errorf("add water column to foods: %w", err)
	}
	return nil
}
