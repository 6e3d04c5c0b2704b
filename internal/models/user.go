package models

import "time"

// Supported user roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       string    `json:"id" db:"id"`                // Primary key
	Username     string    `json:"username" db:"username"`    // Unique username
	Email        string    `json:"email" db:"email"`          // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`      // bcrypt hash
	Role         string    `json:"role" db:"role"`            // user or admin
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}
