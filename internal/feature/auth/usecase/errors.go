// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUsernameTooShort is returned when a registration username has fewer than 3 characters.
	ErrUsernameTooShort = errors.New("username must be at least 3 characters long")

	// ErrPasswordTooShort is returned when a registration password has fewer than 6 characters.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")

	// ErrUsernameTaken is returned when attempting to register a username that already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned on login when the username or password is wrong.
	// It deliberately does not distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when attempting to use an expired session.
	ErrSessionExpired = errors.New("session has expired")
)
