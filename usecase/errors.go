package usecase

import "errors"

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoChanges          = errors.New("no changes provided")
	ErrNoteNotFound       = errors.New("note not found")
	ErrMissingQuery       = errors.New("search query is required")
)
