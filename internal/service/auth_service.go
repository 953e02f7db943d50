package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brunecafe/cafe-service/internal/auth"
	"github.com/brunecafe/cafe-service/internal/models"
	"github.com/brunecafe/cafe-service/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	SessionTTL    = 7 * 24 * time.Hour
	adminUsername = "admin"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	ResolveSession(ctx context.Context, token string) auth.SessionContext
	CurrentUser(ctx context.Context, sess auth.SessionContext) (*models.User, error)
	Register(ctx context.Context, username, password string) (*models.User, error)
	ChangePassword(ctx context.Context, sess auth.SessionContext, current, newPassword string) error
	SeedAdmin(ctx context.Context, defaultPassword string) error
}

type authService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	hasher   auth.Hasher
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, hasher auth.Hasher) AuthService {
	return &authService{users: users, sessions: sessions, hasher: hasher}
}

// Login verifies credentials and opens a session. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		return nil, "", err
	}

	session := &models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(SessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	return user, token, nil
}

// Logout is idempotent: an unknown or already-removed token succeeds.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// ResolveSession maps a token to a session context. Unknown and expired
// tokens resolve anonymous; expired rows are purged on sight.
func (s *authService) ResolveSession(ctx context.Context, token string) auth.SessionContext {
	if token == "" {
		return auth.Anonymous
	}

	session, err := s.sessions.FindByToken(ctx, token)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("session lookup failed")
		}
		return auth.Anonymous
	}

	if time.Now().After(session.ExpiresAt) {
		if err := s.sessions.Delete(ctx, token); err != nil {
			log.Error().Err(err).Msg("failed to delete expired session")
		}
		return auth.Anonymous
	}

	return auth.SessionContext{UserID: session.UserID, Token: token}
}

func (s *authService) CurrentUser(ctx context.Context, sess auth.SessionContext) (*models.User, error) {
	if !sess.Authenticated() {
		return nil, ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		// A session bound to a deleted user is anonymous, not an error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *authService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" {
		return nil, &ValidationError{Field: "username", Message: "username is required"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Message: "password is required"}
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// ChangePassword verifies the caller's current password before storing a
// freshly hashed replacement.
func (s *authService) ChangePassword(ctx context.Context, sess auth.SessionContext, current, newPassword string) error {
	user, err := s.CurrentUser(ctx, sess)
	if err != nil {
		return err
	}

	if newPassword == "" {
		return &ValidationError{Field: "new_password", Message: "new password is required"}
	}
	if !s.hasher.Verify(current, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, hash)
}

// SeedAdmin creates the fixed admin account on first startup. Once the
// account exists this is a no-op.
func (s *authService) SeedAdmin(ctx context.Context, defaultPassword string) error {
	if _, err := s.users.FindByUsername(ctx, adminUsername); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("find admin: %w", err)
	}

	hash, err := s.hasher.Hash(defaultPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     adminUsername,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	log.Info().Str("username", adminUsername).Msg("seeded admin user")
	return nil
}
