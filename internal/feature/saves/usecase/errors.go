// Package usecase implements the business logic for the saves feature.
package usecase

import "errors"

var (
	// ErrSaveNotFound is returned when no save slot matches the caller's
	// (user, save name) pair.
	ErrSaveNotFound = errors.New("save not found")

	// ErrInvalidGameState is returned when the submitted game state is not
	// valid JSON.
	ErrInvalidGameState = errors.New("game state is not valid JSON")

	// ErrCorruptData is returned when a stored payload cannot be decoded.
	ErrCorruptData = errors.New("stored game state is corrupt")
)
