package models

import "time"

// User is an operator account allowed to sign in to the CRM.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Password carries the plaintext password only on the way in (login,
	// setup). It is never persisted.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash stored in the users table.
	PasswordHash string `json:"-"`

	// IsAdmin marks the account created by the setup flow.
	IsAdmin bool `json:"is_admin"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
