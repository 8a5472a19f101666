package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/nutrijourney/nutri/internal/db"
	"github.com/nutrijourney/nutri/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nutrijourney.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func mustCreateUser(t *testing.T, sqldb *sql.DB, username string) {
	t.Helper()
	err := service.CreateUser(sqldb, service.CreateUserInput{
		Username:      username,
		Password:      "secret",
		FullName:      "Test User",
		Age:           30,
		Weight:        70,
		Height:        175,
		Gender:        "male",
		ActivityLevel: 1.2,
	})
	if err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
}
