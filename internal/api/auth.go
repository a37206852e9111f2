package api

import (
	"errors"
	"net/http"

	"github.com/autolote/autolote-core/internal/auth"
)

// User-facing authentication messages, verbatim from the API contract.
const (
	msgInvalidCredentials = "Credenciais inválidas!"
	msgEmailTaken         = "O e-mail já está em uso."
	msgAllFieldsRequired  = "Todos os campos são obrigatórios."
	msgUserNotFound       = "Usuário não encontrado!"
)

// loginRequest is the POST /auth/login payload.
type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// registerRequest is the POST /auth/register payload. Every field is
// required; a partially-filled form is rejected with a single blanket
// message rather than per-field detail.
type registerRequest struct {
	Nome  string    `json:"nome" validate:"required,max=100"`
	Email string    `json:"email" validate:"required,email,max=50"`
	Senha string    `json:"senha" validate:"required,min=6"`
	Nivel auth.Role `json:"nivel" validate:"required,oneof=vendedor gerente admin"`
}

// userResponse is a user account as serialized to clients. The password hash
// never leaves the server.
type userResponse struct {
	ID    int64     `json:"id"`
	Nome  string    `json:"nome"`
	Email string    `json:"email"`
	Nivel auth.Role `json:"nivel"`
}

func toUserResponse(u *auth.User) userResponse {
	return userResponse{ID: u.ID, Nome: u.Nome, Email: u.Email, Nivel: u.Nivel}
}

// handleLogin authenticates a user by email and password and issues a JWT.
//
// Unknown email and wrong password produce the same 401 response; the
// distinction must not leak to callers.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Senha == "" {
		writeBadRequest(w, msgAllFieldsRequired)
		return
	}

	user, err := s.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeUnauthorized(w, msgInvalidCredentials)
			return
		}
		s.logger.Error("login lookup failed", "error", err)
		writeInternalError(w, "Erro ao realizar login.")
		return
	}

	ok, err := auth.VerifyPassword(req.Senha, user.Senha)
	if err != nil {
		s.logger.Error("password verification failed", "user_id", user.ID, "error", err)
		writeInternalError(w, "Erro ao realizar login.")
		return
	}
	if !ok {
		writeUnauthorized(w, msgInvalidCredentials)
		return
	}

	token, err := auth.GenerateAccessToken(user, s.secCfg.JWT.Secret, s.secCfg.JWT.AccessTokenTTL)
	if err != nil {
		s.logger.Error("token generation failed", "user_id", user.ID, "error", err)
		writeInternalError(w, "Erro ao realizar login.")
		return
	}

	s.logger.Info("user logged in", "user_id", user.ID, "nivel", user.Nivel)
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// handleRegister creates a new user account.
//
// The password is hashed before the insert; email uniqueness rides on the
// database constraint, so a duplicate surfaces as 409 with no read-then-write
// window.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Nome == "" || req.Email == "" || req.Senha == "" || req.Nivel == "" {
		writeBadRequest(w, msgAllFieldsRequired)
		return
	}
	if v := checkPayload(req); v != nil {
		writeValidationError(w, v.Field, v.Message)
		return
	}

	hash, err := auth.HashPassword(req.Senha)
	if err != nil {
		s.logger.Error("password hashing failed", "error", err)
		writeInternalError(w, "Erro ao registrar usuário.")
		return
	}

	user := &auth.User{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: hash,
		Nivel: req.Nivel,
	}
	if err := s.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			writeConflict(w, msgEmailTaken)
			return
		}
		s.logger.Error("user creation failed", "error", err)
		writeInternalError(w, "Erro ao registrar usuário.")
		return
	}

	s.notify(ChannelUsersUpdated)
	s.logger.Info("user registered", "user_id", user.ID, "nivel", user.Nivel)
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}
