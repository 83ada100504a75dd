package models

// Admin is a dashboard operator account. Passwords are stored as bcrypt
// hashes and never serialized.
type Admin struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// AdminResponse is the safe representation returned by the login endpoint.
type AdminResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// ToResponse converts Admin to AdminResponse, excluding the password hash.
func (a *Admin) ToResponse() *AdminResponse {
	return &AdminResponse{ID: a.ID, Username: a.Username}
}
