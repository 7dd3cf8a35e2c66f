package entity

import "time"

// Session represents a logged-in browser session.
// The ID is the opaque token carried (signed) in the session cookie; identity
// is always resolved server-side from this record, never from client fields.
type Session struct {
	ID        string    // Session token value (64-character hex string)
	UserID    uint      // Associated user ID
	UserAgent string    // Client's User-Agent header
	IPAddress string    // Client's IP address
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Session expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
