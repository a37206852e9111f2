package auth

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// testDB creates a temporary SQLite database with the usuarios schema applied.
// The database file is cleaned up when the test completes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	// Use a temp file so WAL mode works (in-memory doesn't support it)
	f, err := os.CreateTemp("", "auth-test-*.db")
	if err != nil {
		t.Fatalf("creating temp db: %v", err)
	}
	dbPath := f.Name()
	f.Close()
	t.Cleanup(func() { os.Remove(dbPath) })

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON")
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := `
		CREATE TABLE usuarios (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nome TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			senha TEXT NOT NULL,
			nivel TEXT NOT NULL CHECK (nivel IN ('vendedor', 'gerente', 'admin'))
		);

		CREATE UNIQUE INDEX idx_usuarios_email ON usuarios(email);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("creating usuarios table: %v", err)
	}

	return db
}

// seedUser inserts a user with a pre-hashed password and returns it.
func seedUser(t *testing.T, repo *SQLiteUserRepository, email string, nivel Role) *User {
	t.Helper()

	hash, err := HashPassword("senha123")
	if err != nil {
		t.Fatalf("hashing seed password: %v", err)
	}

	user := &User{
		Nome:  "Usuário Teste",
		Email: email,
		Senha: hash,
		Nivel: nivel,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return user
}
