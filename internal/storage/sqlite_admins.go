package storage

import (
	"database/sql"
	"fmt"

	"github.com/mithuan2002/testisimple/internal/models"
)

// GetAdmin retrieves an admin account by ID
func (s *SQLite) GetAdmin(id int) (*models.Admin, error) {
	admin := &models.Admin{}
	err := s.db.QueryRow(
		"SELECT id, username, password_hash FROM admins WHERE id = ?", id,
	).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return admin, nil
}

// GetAdminByUsername retrieves an admin account by username
func (s *SQLite) GetAdminByUsername(username string) (*models.Admin, error) {
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	admin := &models.Admin{}
	err := s.db.QueryRow(
		"SELECT id, username, password_hash FROM admins WHERE username = ?", username,
	).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by username: %w", err)
	}

	return admin, nil
}

// CreateAdmin inserts a new admin account and assigns its ID
func (s *SQLite) CreateAdmin(admin *models.Admin) error {
	if admin == nil {
		return fmt.Errorf("admin cannot be nil")
	}

	res, err := s.db.Exec(
		"INSERT INTO admins (username, password_hash) VALUES (?, ?)",
		admin.Username, admin.PasswordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	admin.ID, err = lastInsertID(res)
	return err
}
