package storage

import (
	"database/sql"
	"fmt"

	"github.com/mithuan2002/testisimple/internal/models"
)

// GetContact retrieves a contact by ID
func (s *SQLite) GetContact(id int) (*models.Contact, error) {
	contact := &models.Contact{}
	err := s.db.QueryRow(
		"SELECT id, name, phone, email, is_active FROM contacts WHERE id = ?", id,
	).Scan(&contact.ID, &contact.Name, &contact.Phone, &contact.Email, &contact.IsActive)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return contact, nil
}

// GetAllContacts retrieves every contact ordered by ID
func (s *SQLite) GetAllContacts() ([]*models.Contact, error) {
	rows, err := s.db.Query("SELECT id, name, phone, email, is_active FROM contacts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		contact := &models.Contact{}
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Phone, &contact.Email, &contact.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}

// CreateContact inserts a new contact and assigns its ID
func (s *SQLite) CreateContact(contact *models.Contact) error {
	if contact == nil {
		return fmt.Errorf("contact cannot be nil")
	}

	res, err := s.db.Exec(
		"INSERT INTO contacts (name, phone, email, is_active) VALUES (?, ?, ?, ?)",
		contact.Name, contact.Phone, contact.Email, contact.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePhone
		}
		return fmt.Errorf("failed to create contact: %w", err)
	}

	contact.ID, err = lastInsertID(res)
	return err
}

// UpdateContact applies a partial update and returns the stored record.
// Returns ErrNotFound when the contact does not exist.
func (s *SQLite) UpdateContact(id int, update models.UpdateContactRequest) (*models.Contact, error) {
	contact, err := s.GetContact(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrNotFound
	}

	if update.Name != nil {
		contact.Name = *update.Name
	}
	if update.Phone != nil {
		contact.Phone = *update.Phone
	}
	if update.Email != nil {
		contact.Email = update.Email
	}
	if update.IsActive != nil {
		contact.IsActive = *update.IsActive
	}

	_, err = s.db.Exec(
		"UPDATE contacts SET name = ?, phone = ?, email = ?, is_active = ? WHERE id = ?",
		contact.Name, contact.Phone, contact.Email, contact.IsActive, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicatePhone
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

// DeleteContact removes a contact. Deleting a missing ID is a no-op.
func (s *SQLite) DeleteContact(id int) error {
	if _, err := s.db.Exec("DELETE FROM contacts WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
