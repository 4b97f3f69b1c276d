package models

import "time"

// UserDB represents a user record in the database.
type UserDB struct {
	ID               int64     `db:"id"`                // Primary key
	Login            string    `db:"login"`             // Unique login
	Password         string    `db:"password"`          // bcrypt hash, never plaintext
	Mail             *string   `db:"mail"`              // Optional email
	RegistrationTime time.Time `db:"registration_time"` // Set once at creation
	Token            string    `db:"token"`             // Opaque bearer credential, set once at creation
}

// UserPatch is the allow-listed set of fields a PATCH may overwrite.
// Nil fields are left untouched. Password must already be hashed.
type UserPatch struct {
	Login    *string
	Password *string
	Mail     *string
}
