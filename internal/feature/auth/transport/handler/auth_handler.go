// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"game_backend/internal/api"
	"game_backend/internal/feature/auth/domain/entity"
	"game_backend/internal/feature/auth/transport/http/dto"
	"game_backend/internal/feature/auth/transport/middleware"
	"game_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the auth operations used by the HTTP layer.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user after validating the credentials.
	Register(ctx context.Context, username, password string) (*entity.User, error)
	// Login verifies the credentials and returns the matching user.
	Login(ctx context.Context, username, password string) (*entity.User, error)
	// StartSession opens a session for the user and returns the cookie token.
	StartSession(ctx context.Context, user *entity.User, userAgent, ipAddress string) (string, error)
	// Resolve maps a cookie token to the authenticated user.
	Resolve(ctx context.Context, token string) (*entity.User, error)
	// Logout deletes the session referenced by the token.
	Logout(ctx context.Context, token string) error
}

// AuthHandler handles HTTP requests for registration, login, logout and
// identity resolution.
type AuthHandler struct {
	auth         AuthUsecase
	cookieMaxAge int
}

// NewAuthHandler creates a new AuthHandler.
// cookieMaxAge is the session cookie lifetime in seconds.
func NewAuthHandler(auth AuthUsecase, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{auth: auth, cookieMaxAge: cookieMaxAge}
}

// CurrentUser handles GET /api/user.
// It reports the identity state of the caller; an absent or invalid session
// cookie simply means anonymous, never an error.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil {
		c.JSON(http.StatusOK, api.UserResponse{LoggedIn: false})
		return
	}

	user, err := h.auth.Resolve(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusOK, api.UserResponse{LoggedIn: false})
		return
	}

	c.JSON(http.StatusOK, api.UserResponse{LoggedIn: true, Username: user.Username})
}

// Register handles POST /api/register.
// On success the new user is logged in immediately (session cookie set).
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgFieldsRequired})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		status, msg := registerError(err)
		slog.Warn("register failed", "error", err, "username", *req.Username, "remote_addr", c.ClientIP())
		c.JSON(status, api.ErrorResponse{Error: msg})
		return
	}

	if !h.startSession(c, user) {
		return
	}

	slog.Info("user registered", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.MessageResponse{Message: msgRegisterOK})
}

// Login handles POST /api/login.
// Unknown username and wrong password produce the same generic 401 message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: msgFieldsRequired})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "username", *req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: msgBadCredentials})
		return
	}

	if !h.startSession(c, user) {
		return
	}

	slog.Info("user login successful", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: msgLoginOK})
}

// Logout handles POST /api/logout (session required).
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			slog.Warn("logout failed to delete session", "error", err)
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, api.MessageResponse{Message: msgLogoutOK})
}

// startSession opens a session for the user and sets the cookie.
// It writes a 500 response and returns false when session creation fails.
func (h *AuthHandler) startSession(c *gin.Context, user *entity.User) bool {
	token, err := h.auth.StartSession(c.Request.Context(), user, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		slog.Error("failed to start session", "error", err, "username", user.Username)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: msgInternalError})
		return false
	}

	c.SetCookie(middleware.SessionCookie, token, h.cookieMaxAge, "/", "", false, true)
	return true
}

// registerError maps usecase registration errors to a status code and
// user-facing text. Validation failures are 400; anything else is 500.
func registerError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrUsernameTooShort):
		return http.StatusBadRequest, msgUsernameTooShort
	case errors.Is(err, usecase.ErrPasswordTooShort):
		return http.StatusBadRequest, msgPasswordTooShort
	case errors.Is(err, usecase.ErrUsernameTaken):
		return http.StatusBadRequest, msgUsernameTaken
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}
