package models

import "strings"

// Admin is one row of the admins table. Passwords are stored as bcrypt hashes
// only; the salt column is a legacy placeholder kept for sheet compatibility.
type Admin struct {
	Email     string `json:"email"`
	Salt      string `json:"-"`
	Hash      string `json:"-"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// AdminFromRow maps a header-keyed sheet row to an Admin.
func AdminFromRow(row map[string]string) Admin {
	return Admin{
		Email:     strings.TrimSpace(row["email"]),
		Salt:      row["salt"],
		Hash:      strings.TrimSpace(row["hash"]),
		Role:      strings.TrimSpace(row["role"]),
		CreatedAt: strings.TrimSpace(row["created_at"]),
	}
}

// EmailKey returns the email in the form used for uniqueness checks.
func (a Admin) EmailKey() string {
	return strings.ToLower(strings.TrimSpace(a.Email))
}
