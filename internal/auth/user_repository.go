package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// SQLiteUserRepository implements UserRepository using SQLite.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed user repository.
func NewUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create inserts a new user account and fills in the generated ID.
// The senha field must already contain the password hash.
//
// Email uniqueness is enforced by the database constraint; a violation is
// reported as ErrEmailExists. There is no check-then-insert window.
func (r *SQLiteUserRepository) Create(ctx context.Context, user *User) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO usuarios (nome, email, senha, nivel) VALUES (?, ?, ?, ?)",
		user.Nome, user.Email, user.Senha, string(user.Nivel),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("creating user: %w", err)
	}

	user.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted user id: %w", err)
	}
	return nil
}

// GetByID retrieves a user by their unique ID.
func (r *SQLiteUserRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	return r.getUser(ctx, "SELECT id, nome, email, senha, nivel FROM usuarios WHERE id = ?", id)
}

// GetByEmail retrieves a user by their email address.
func (r *SQLiteUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.getUser(ctx, "SELECT id, nome, email, senha, nivel FROM usuarios WHERE email = ?", email)
}

// List returns all users ordered by ID.
func (r *SQLiteUserRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, nome, email, senha, nivel FROM usuarios ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		var nivel string
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.Senha, &nivel); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		u.Nivel = Role(nivel)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	if users == nil {
		users = []User{}
	}
	return users, nil
}

// Update rewrites all mutable fields of a user, including the password hash.
// Callers that don't intend to change the password must carry the stored
// hash over into user.Senha before calling.
func (r *SQLiteUserRepository) Update(ctx context.Context, user *User) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE usuarios SET nome = ?, email = ?, senha = ?, nivel = ? WHERE id = ?",
		user.Nome, user.Email, user.Senha, string(user.Nivel), user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("updating user: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes a user account by ID.
func (r *SQLiteUserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM usuarios WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	rows, _ := result.RowsAffected() //nolint:errcheck // always succeeds on SQLite
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Count returns the total number of user accounts.
func (r *SQLiteUserRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM usuarios").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}
	return count, nil
}

// getUser executes a query expected to return a single user row.
func (r *SQLiteUserRepository) getUser(ctx context.Context, query string, args ...any) (*User, error) {
	var u User
	var nivel string

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Nome, &u.Email, &u.Senha, &nivel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	u.Nivel = Role(nivel)
	return &u, nil
}

// isUniqueViolation checks if a SQLite error is a UNIQUE constraint violation.
func isUniqueViolation(err error) bool {
	return err != nil && (strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "unique constraint"))
}
