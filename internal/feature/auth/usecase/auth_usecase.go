package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"game_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minUsernameLength is the minimum number of characters for a username.
	// Lengths are counted in runes, not bytes: Turkish usernames routinely
	// contain multibyte characters.
	minUsernameLength = 3

	// minPasswordLength is the minimum number of characters for a password.
	minPasswordLength = 6
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user matching the username exactly (case-sensitive).
	// It returns ErrUserNotFound if the user does not exist.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenSigner signs and verifies the session token carried in the cookie.
type TokenSigner interface {
	// Sign wraps the session ID into a signed token.
	Sign(sessionID string) (string, error)
	// Verify checks the token signature and returns the embedded session ID.
	Verify(token string) (string, error)
}

// AuthUsecase implements registration, credential verification and the
// session lifecycle.
type AuthUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	signer     TokenSigner
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new AuthUsecase with its dependencies injected.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, signer TokenSigner, sessionTTL time.Duration) *AuthUsecase {
	return &AuthUsecase{
		users:      users,
		sessions:   sessions,
		signer:     signer,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new user with a hashed password.
// The username is trimmed before validation and stored as given (case-sensitive).
// Uniqueness is checked by lookup before the insert; the unique index on the
// users table remains as a backstop.
func (u *AuthUsecase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)

	if utf8.RuneCountInString(username) < minUsernameLength {
		return nil, ErrUsernameTooShort
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	_, err := u.users.FindByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, PasswordHash: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// dummyHash is a bcrypt digest compared against when the user does not exist,
// so that login always performs one bcrypt comparison regardless of whether
// the username is known (timing-attack mitigation).
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login verifies the credentials and returns the matching user.
// Unknown username and wrong password both yield ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)

	user, err := u.users.FindByUsername(ctx, username)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.PasswordHash
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// StartSession creates a server-side session for the user and returns the
// signed token to place in the session cookie.
func (u *AuthUsecase) StartSession(ctx context.Context, user *entity.User, userAgent, ipAddress string) (string, error) {
	id, err := newSessionID()
	if err != nil {
		return "", err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        id,
		UserID:    user.ID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	token, err := u.signer.Sign(id)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// Resolve maps a cookie token back to the authenticated user.
// It verifies the token signature, loads the session and then the user;
// a tampered token, unknown session or expired session all fail.
func (u *AuthUsecase) Resolve(ctx context.Context, token string) (*entity.User, error) {
	id, err := u.signer.Verify(token)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	session, err := u.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.IsExpired() {
		_ = u.sessions.Delete(ctx, id)
		return nil, ErrSessionExpired
	}

	return u.users.FindByID(ctx, session.UserID)
}

// Logout deletes the session referenced by the token.
// An invalid or already-deleted token is not an error.
func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	id, err := u.signer.Verify(token)
	if err != nil {
		return nil
	}
	return u.sessions.Delete(ctx, id)
}

// newSessionID returns a 64-character hex token from 32 random bytes.
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
