package models

import "time"

// DefaultLevel is the experience level assigned at registration.
const DefaultLevel = "Beginner"

// UserDB represents a user record in the database.
type UserDB struct {
	UserID       int64     `json:"id" db:"user_id"`                // Primary key
	Name         string    `json:"name" db:"name"`                 // Display name
	Email        string    `json:"email" db:"email"`               // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`           // bcrypt digest
	Level        string    `json:"level" db:"level"`               // Experience level label
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
