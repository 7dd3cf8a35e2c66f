// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered player.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the login name chosen at registration.
	// It must be unique across all users and is matched case-sensitively.
	Username string `gorm:"uniqueIndex;size:64;not null"`

	// PasswordHash is the bcrypt digest of the user's password.
	// This never stores plaintext passwords.
	PasswordHash string `gorm:"size:256;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time
}
