// Package api defines the JSON response shapes shared by all HTTP handlers.
package api

import "time"

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of a successful operation that has no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse reports the caller's identity state.
// Username is only present when LoggedIn is true.
type UserResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username,omitempty"`
}

// SaveSummary is one entry of the save-slot listing.
type SaveSummary struct {
	SaveName  string    `json:"save_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
