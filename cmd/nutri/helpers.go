package nutri

import (
	"database/sql"
	"time"

	"github.com/nutrijourney/nutri/internal/app"
	"github.com/nutrijourney/nutri/internal/config"
	"github.com/nutrijourney/nutri/internal/db"
)

// resolveDBPath picks the database location: --db flag, then NUTRI_DB from
// the environment, then the per-user default.
func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg := config.Load(); cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// todayDateDay fills in the default consumption tags: an ISO date (so the
// stored string ordering matches the calendar) and the weekday name.
func todayDateDay(date, day string) (string, string) {
	now := time.Now()
	if date == "" {
		date = now.Format("2006-01-02")
	}
	if day == "" {
		day = now.Weekday().String()
	}
	return date, day
}
