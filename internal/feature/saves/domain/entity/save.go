// Package entity defines the domain entities for the saves feature.
package entity

import "time"

// GameSave is one named save slot owned by a user.
// Data is the game state as JSON text; the store treats it as opaque.
type GameSave struct {
	ID        uint
	UserID    uint
	SaveName  string
	Data      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
