package types

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// Role is the authorization level stored on a user account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleManager Role = "manager"
)

// Valid reports whether the role is one of the enumerated values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleManager:
		return true
	}
	return false
}

// User represents an account in the system.
// It contains identity, role, and audit metadata.
type User struct {
	// ID is the unique identifier of the user, assigned at creation.
	ID string `json:"id" db:"id"`

	// Username is the unique login name chosen by the user.
	Username string `json:"username" db:"username"`

	// Email is the user's email address, unique across all users.
	Email string `json:"email" db:"email"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never exposed in API responses and is only loaded on
	// the login path.
	PasswordHash string `json:"-" db:"password_hash"`

	// Role indicates the user's authorization level within the system.
	Role Role `json:"role" db:"role"`

	// IsActive marks whether the account is enabled.
	IsActive bool `json:"is_active" db:"is_active"`

	// FirstName is the user's given name, optional.
	FirstName string `json:"first_name" db:"first_name"`

	// LastName is the user's family name, optional.
	LastName string `json:"last_name" db:"last_name"`

	// PhoneNumber is the user's contact number, optional.
	PhoneNumber string `json:"phone_number" db:"phone_number"`

	// LastLoginAt records the most recent successful login. No operation
	// currently writes it; the column exists for schema compatibility.
	LastLoginAt *time.Time `json:"last_login_at" db:"last_login_at"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the user account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

// Validation errors returned by the rule set below.
var (
	ErrUsernameTooShort = errors.New("username must be at least 3 characters long")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	ErrInvalidRole      = errors.New("invalid role")
)

// ValidateUsername enforces the username length rule.
func ValidateUsername(username string) error {
	if len(strings.TrimSpace(username)) < minUsernameLength {
		return ErrUsernameTooShort
	}
	return nil
}

// ValidateEmail enforces email syntax. The parsed address must match the
// input exactly so display-name forms like "A <a@x.com>" are rejected.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the plaintext length rule. It applies before
// hashing; the stored digest is never checked against it.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateRole enforces the role enumeration.
func ValidateRole(role Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	return nil
}
