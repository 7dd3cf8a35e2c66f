// Package middleware provides the session-cookie authentication middleware.
package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"game_backend/internal/api"
	"game_backend/internal/feature/auth/domain/entity"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "session"

// Context keys under which the authenticated identity is stored.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// SessionResolver resolves a cookie token to the authenticated user.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (usecase).
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that restricts access to requests
// carrying a valid session cookie. Identity is resolved server-side from the
// session store; no client-supplied identity field is trusted.
func AuthRequired(auth SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Giriş yapmanız gerekiyor!"})
			return
		}

		user, err := auth.Resolve(c.Request.Context(), token)
		if err != nil {
			// Tampered token, unknown or expired session: all anonymous.
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Giriş yapmanız gerekiyor!"})
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUsername, user.Username)
		c.Next()
	}
}
