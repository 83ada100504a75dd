package models

// Contact is a phone-book entry that campaign SMS notifications fan out to.
// Phone numbers are unique across the table.
type Contact struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email"`
	IsActive bool    `json:"isActive"`
}

// CreateContactRequest represents the request body for creating a contact
type CreateContactRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Email    *string `json:"email"`
	IsActive *bool   `json:"isActive"`
}

// UpdateContactRequest represents a partial update to an existing contact
type UpdateContactRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// UpdateContactStatusRequest toggles a contact's active flag
type UpdateContactStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
