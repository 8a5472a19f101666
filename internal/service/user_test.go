package service_test

import (
	"errors"
	"testing"

	"github.com/nutrijourney/nutri/internal/service"
)

func TestCreateAndGetUserRoundtrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	in := service.CreateUserInput{
		Username:      "budi",
		Password:      "rahasia",
		FullName:      "Budi Santoso",
		Age:           28,
		Weight:        68.5,
		Height:        172,
		Gender:        "male",
		ActivityLevel: 1.55,
	}
	if err := service.CreateUser(db, in); err != nil {
		t.Fatalf("create user: %v", err)
	}

	u, err := service.GetUser(db, "budi")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u == nil {
		t.Fatalf("expected user, got nil")
	}
	if u.Username != in.Username || u.Password != in.Password || u.FullName != in.FullName ||
		u.Age != in.Age || u.Weight != in.Weight || u.Height != in.Height ||
		u.Gender != in.Gender || u.ActivityLevel != in.ActivityLevel {
		t.Fatalf("stored attributes mismatch: %+v", u)
	}
	if len(u.FoodLog) != 0 {
		t.Fatalf("expected empty food log, got %d entries", len(u.FoodLog))
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	mustCreateUser(t, db, "dina")

	err := service.CreateUser(db, service.CreateUserInput{Username: "dina", Password: "other"})
	if !errors.Is(err, service.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestCreateUserValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := service.CreateUser(db, service.CreateUserInput{Username: "", Password: "x"}); err == nil {
		t.Fatalf("expected error for empty username")
	}
	if err := service.CreateUser(db, service.CreateUserInput{Username: "x", Password: ""}); err == nil {
		t.Fatalf("expected error for empty password")
	}
	if err := service.CreateUser(db, service.CreateUserInput{Username: "x", Password: "y", Age: -1}); err == nil {
		t.Fatalf("expected error for negative age")
	}
}

func TestGetUserAbsentReturnsNilNil(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	u, err := service.GetUser(db, "nobody")
	if err != nil {
		t.Fatalf("get absent user: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil user, got %+v", u)
	}
}

func TestUpdateUserWeightTouchesOnlyWeight(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	mustCreateUser(t, db, "sari")
	before, err := service.GetUser(db, "sari")
	if err != nil || before == nil {
		t.Fatalf("get user before update: %v", err)
	}

	if err := service.UpdateUserWeight(db, "sari", 72.5); err != nil {
		t.Fatalf("update weight: %v", err)
	}

	after, err := service.GetUser(db, "sari")
	if err != nil || after == nil {
		t.Fatalf("get user after update: %v", err)
	}
	if after.Weight != 72.5 {
		t.Fatalf("expected weight 72.5, got %f", after.Weight)
	}
	if after.Password != before.Password || after.FullName != before.FullName ||
		after.Age != before.Age || after.Height != before.Height ||
		after.Gender != before.Gender || after.ActivityLevel != before.ActivityLevel {
		t.Fatalf("non-weight fields changed: before %+v after %+v", before, after)
	}
}

func TestUpdateUserWeightMissingUser(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	err := service.UpdateUserWeight(db, "ghost", 60)
	if !errors.Is(err, service.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	mustCreateUser(t, db, "andi")

	u, err := service.Authenticate(db, "andi", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u == nil || u.Username != "andi" {
		t.Fatalf("expected user andi, got %+v", u)
	}

	if _, err := service.Authenticate(db, "andi", "wrong"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := service.Authenticate(db, "ghost", "secret"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
