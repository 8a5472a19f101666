package service

import "errors"

// Typed outcomes, so callers can tell not-found and conflicts apart from
// store failures.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrEntryNotFound      = errors.New("food log entry not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
