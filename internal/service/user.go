package service

import (
	"database/sql"
	"fmt"

	"github.com/nutrijourney/nutri/internal/db"
	"github.com/nutrijourney/nutri/internal/model"
)

type CreateUserInput struct {
	Username      string
	Password      string
	FullName      string
	Age           int
	Weight        float64
	Height        float64
	Gender        string
	ActivityLevel float64
}

// CreateUser inserts a new profile. A duplicate username maps to
// ErrUserExists. Passwords are stored as given; hardening the credential
// store is out of scope here.
func CreateUser(sqldb *sql.DB, in CreateUserInput) error {
	if err := requireNonEmpty("username", in.Username); err != nil {
		return err
	}
	if err := requireNonEmpty("password", in.Password); err != nil {
		return err
	}
	if in.Age < 0 {
		return fmt.Errorf("age must be >= 0")
	}
	if err := validateNonNegativeFloat("weight", in.Weight); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("height", in.Height); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("activity-level", in.ActivityLevel); err != nil {
		return err
	}

	_, err := sqldb.Exec(`
INSERT INTO users(username, password, full_name, age, weight, height, gender, activity_level)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, in.Username, in.Password, in.FullName, in.Age, in.Weight, in.Height, in.Gender, in.ActivityLevel)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("create user %q: %w", in.Username, ErrUserExists)
		}
		return fmt.Errorf("create user %q: %w", in.Username, err)
	}
	return nil
}

// GetUser looks up a profile by username and eagerly attaches its full food
// log. A missing user returns (nil, nil).
func GetUser(sqldb *sql.DB, username string) (*model.User, error) {
	if err := requireNonEmpty("username", username); err != nil {
		return nil, err
	}

	var u model.User
	err := sqldb.QueryRow(`
SELECT username, password, full_name, age, weight, height, gender, activity_level
FROM users WHERE username = ?
`, username).Scan(&u.Username, &u.Password, &u.FullName, &u.Age, &u.Weight, &u.Height, &u.Gender, &u.ActivityLevel)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}

	log, err := FoodLog(sqldb, username)
	if err != nil {
		return nil, err
	}
	u.FoodLog = log
	return &u, nil
}

// UpdateUserWeight updates only the weight column. ErrUserNotFound when the
// username does not exist.
func UpdateUserWeight(sqldb *sql.DB, username string, weight float64) error {
	if err := requireNonEmpty("username", username); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("weight", weight); err != nil {
		return err
	}
	res, err := sqldb.Exec(`UPDATE users SET weight = ? WHERE username = ?`, weight, username)
	if err != nil {
		return fmt.Errorf("update weight for %q: %w", username, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update weight for %q: %w", username, ErrUserNotFound)
	}
	return nil
}

// Authenticate checks a username/password pair against the stored profile
// and returns the user (food log attached) on success. The comparison is
// plaintext, matching how the passwords are stored.
func Authenticate(sqldb *sql.DB, username, password string) (*model.User, error) {
	if err := requireNonEmpty("username", username); err != nil {
		return nil, err
	}
	if err := requireNonEmpty("password", password); err != nil {
		return nil, err
	}
	u, err := GetUser(sqldb, username)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Password != password {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
