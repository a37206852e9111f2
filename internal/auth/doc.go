// Package auth provides identity and access control for Autolote Core.
//
// It covers four concerns:
//
//   - Roles: the typed authorisation tiers (vendedor, gerente, admin) and a
//     pure membership check used by the HTTP role gate.
//   - Credentials: Argon2id password hashing and constant-time verification.
//   - Tokens: stateless JWT access tokens carrying {subject, nivel, expiry}.
//     Signature and expiry are the only validity checks; rotating the signing
//     secret invalidates every outstanding token.
//   - Persistence: the SQLite-backed user account repository.
//
// Login failures are deliberately uniform: an unknown email and a wrong
// password both surface ErrInvalidCredentials so callers cannot probe which
// accounts exist.
package auth
