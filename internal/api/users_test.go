package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/autolote/autolote-core/internal/auth"
)

func TestHandleListUsers(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@autolote.com", auth.RoleAdmin)
	env.createUser(t, "vendedor@autolote.com", auth.RoleVendedor)

	rec := env.request(t, http.MethodGet, "/auth/user", env.tokenFor(t, admin), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}

	var users []userResponse
	decodeBody(t, rec, &users)
	if len(users) != 2 {
		t.Errorf("list returned %d users, want 2", len(users))
	}

	// Stored hashes must never appear in responses
	if strings.Contains(rec.Body.String(), "argon2id") {
		t.Error("user list must not contain password hashes")
	}
}

func TestHandleGetUser(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@autolote.com", auth.RoleAdmin)
	other := env.createUser(t, "outro@autolote.com", auth.RoleVendedor)

	rec := env.request(t, http.MethodGet, fmt.Sprintf("/auth/user/%d", other.ID), env.tokenFor(t, admin), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}

	var user userResponse
	decodeBody(t, rec, &user)
	if user.Email != "outro@autolote.com" {
		t.Errorf("email = %q, want outro@autolote.com", user.Email)
	}

	rec = env.request(t, http.MethodGet, "/auth/user/999", env.tokenFor(t, admin), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get missing status = %d, want 404", rec.Code)
	}
	var body Error
	decodeBody(t, rec, &body)
	if body.Message != "Usuário não encontrado!" {
		t.Errorf("message = %q, want %q", body.Message, "Usuário não encontrado!")
	}
}

func TestHandleUpdateUser_KeepsPasswordWhenOmitted(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@autolote.com", auth.RoleAdmin)
	user := env.createUser(t, "mudar@autolote.com", auth.RoleVendedor)

	rec := env.request(t, http.MethodPut, fmt.Sprintf("/auth/user/%d", user.ID), env.tokenFor(t, admin), map[string]string{
		"nome":  "Nome Novo",
		"email": "mudar@autolote.com",
		"nivel": "gerente",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	// Old password still works
	login := env.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "mudar@autolote.com",
		"senha": "senha123",
	})
	if login.Code != http.StatusOK {
		t.Errorf("login with original password status = %d, want 200", login.Code)
	}

	// Role change took effect
	updated, err := env.users.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("fetching updated user: %v", err)
	}
	if updated.Nivel != auth.RoleGerente {
		t.Errorf("nivel = %q, want gerente", updated.Nivel)
	}
}

func TestHandleUpdateUser_RehashesNewPassword(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@autolote.com", auth.RoleAdmin)
	user := env.createUser(t, "troca@autolote.com", auth.RoleVendedor)

	rec := env.request(t, http.MethodPut, fmt.Sprintf("/auth/user/%d", user.ID), env.tokenFor(t, admin), map[string]string{
		"nome":  "Usuário Teste",
		"email": "troca@autolote.com",
		"senha": "novasenha456",
		"nivel": "vendedor",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	// Old password no longer works, new one does
	oldLogin := env.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "troca@autolote.com",
		"senha": "senha123",
	})
	if oldLogin.Code != http.StatusUnauthorized {
		t.Errorf("login with old password status = %d, want 401", oldLogin.Code)
	}

	newLogin := env.request(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "troca@autolote.com",
		"senha": "novasenha456",
	})
	if newLogin.Code != http.StatusOK {
		t.Errorf("login with new password status = %d, want 200", newLogin.Code)
	}
}

func TestHandleUpdateUser_EmailConflict(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@autolote.com", auth.RoleAdmin)
	user := env.createUser(t, "segundo@autolote.com", auth.RoleVendedor)

	rec := env.request(t, http.MethodPut, fmt.Sprintf("/auth/user/%d", user.ID), env.tokenFor(t, admin), map[string]string{
		"nome":  "Usuário Teste",
		"email": "admin@autolote.com",
		"nivel": "vendedor",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("update status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleUpdateUser_NotFound(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@autolote.com", auth.RoleAdmin)

	rec := env.request(t, http.MethodPut, "/auth/user/999", env.tokenFor(t, admin), map[string]string{
		"nome":  "Fantasma",
		"email": "fantasma@autolote.com",
		"nivel": "vendedor",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update missing status = %d, want 404", rec.Code)
	}
}

func TestHandleDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "admin@autolote.com", auth.RoleAdmin)
	user := env.createUser(t, "apagar@autolote.com", auth.RoleVendedor)
	token := env.tokenFor(t, admin)

	// User delete is 200 with an empty body, unlike the 204 carros delete
	rec := env.request(t, http.MethodDelete, fmt.Sprintf("/auth/user/%d", user.ID), token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("delete body = %q, want empty", rec.Body.String())
	}

	rec = env.request(t, http.MethodDelete, fmt.Sprintf("/auth/user/%d", user.ID), token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rec.Code)
	}
}
