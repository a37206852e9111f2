package auth

import "errors"

// Role represents an authorisation tier in the system.
type Role string

const (
	// RoleVendedor is the sales floor tier: read-only access to the catalog.
	RoleVendedor Role = "vendedor"

	// RoleGerente manages the vehicle catalog: create, update, delete.
	RoleGerente Role = "gerente"

	// RoleAdmin has everything gerente has plus user account management.
	RoleAdmin Role = "admin"
)

// ValidRoles is the set of roles a user account may hold.
var ValidRoles = []Role{RoleVendedor, RoleGerente, RoleAdmin}

// IsValidRole returns true if the role is a recognised account role.
func IsValidRole(r Role) bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// IsAllowed reports whether the role is a member of the allowed set.
// This is the single role-membership check used by the authorisation gate.
func IsAllowed(r Role, allowed ...Role) bool {
	for _, v := range allowed {
		if r == v {
			return true
		}
	}
	return false
}

// User represents a registered account.
//
// Senha holds the Argon2id hash, never the plaintext, and is excluded from
// JSON serialisation so API responses can return the struct directly.
type User struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"-"` // password hash, never serialised
	Nivel Role   `json:"nivel"`
}

// Sentinel errors for auth operations.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrTokenInvalid       = errors.New("invalid token")
)
