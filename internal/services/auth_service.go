package services

import (
	"errors"
	"fmt"

	"github.com/mithuan2002/testisimple/internal/models"
	"github.com/mithuan2002/testisimple/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the cost parameter for bcrypt password hashing
const BcryptCost = 12

// ErrInvalidCredentials indicates authentication failure. The same error is
// returned for an unknown username and a wrong password so the login
// endpoint does not leak which usernames exist.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService authenticates dashboard admins.
type AuthService struct {
	store storage.Storage
}

// NewAuthService creates a new AuthService instance
func NewAuthService(store storage.Storage) *AuthService {
	return &AuthService{store: store}
}

// Authenticate verifies the credentials against the stored bcrypt hash and
// returns the matching admin account.
func (s *AuthService) Authenticate(username, password string) (*models.Admin, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	admin, err := s.store.GetAdminByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// CreateAdmin registers a new admin account with a hashed password.
func (s *AuthService) CreateAdmin(username, password string) (*models.Admin, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}
	if len(password) < 4 {
		return nil, errors.New("password must be at least 4 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{Username: username, PasswordHash: string(hash)}
	if err := s.store.CreateAdmin(admin); err != nil {
		return nil, err
	}

	return admin, nil
}
