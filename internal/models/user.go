package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Contact address, not unique
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	FirstName    string    `json:"first_name" db:"first_name"` // Optional given name
	LastName     string    `json:"last_name" db:"last_name"`   // Optional family name
	IsActive     bool      `json:"-" db:"is_active"`           // False until the email is verified
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// FullName joins first and last name, or returns "" when both are empty.
func (u *UserDB) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// DisplayName is the full name when set, otherwise the username.
func (u *UserDB) DisplayName() string {
	if name := u.FullName(); name != "" {
		return name
	}
	return u.Username
}
