package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gotodo/db"
	"gotodo/internal/auth"
	"gotodo/models"
)

var (
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password, without distinguishing the two.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidUsername is returned when the username fails validation.
	ErrInvalidUsername = errors.New("username must be between 4 and 25 characters")
	// ErrInvalidPassword is returned when the password fails validation.
	ErrInvalidPassword = errors.New("password must be at least 6 characters")
)

// Service handles user registration and credential verification
type Service struct {
	repo      db.UserRepository
	dbManager *db.DBManager
}

// NewService creates a new user service
func NewService(repo db.UserRepository, dbManager *db.DBManager) *Service {
	return &Service{repo: repo, dbManager: dbManager}
}

// Register creates a new user with a hashed password. The plaintext is never
// persisted or logged.
func (s *Service) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 4 || len(username) > 25 {
		return nil, ErrInvalidUsername
	}
	if len(password) < 6 {
		return nil, ErrInvalidPassword
	}

	// Pre-check so the common case reports a clean duplicate error. The
	// UNIQUE constraint still backstops racing registrations.
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	created, err := s.dbManager.CreateUser(s.repo, ctx, &models.User{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

// Authenticate verifies a username/password pair. An unknown username and a
// wrong password yield the same error, so callers cannot probe for accounts.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// GetByID looks up a user by id
func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}
