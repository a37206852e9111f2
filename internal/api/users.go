package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/autolote/autolote-core/internal/auth"
)

// updateUserRequest is the PUT /auth/user/{id} payload. Unlike registration,
// senha is optional: when absent the stored hash is kept unchanged.
type updateUserRequest struct {
	Nome  string    `json:"nome" validate:"required,max=100"`
	Email string    `json:"email" validate:"required,email,max=50"`
	Senha string    `json:"senha" validate:"omitempty,min=6"`
	Nivel auth.Role `json:"nivel" validate:"required,oneof=vendedor gerente admin"`
}

// handleListUsers returns all user accounts, without password hashes.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.logger.Error("user list failed", "error", err)
		writeInternalError(w, "Erro ao listar usuários.")
		return
	}

	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleGetUser returns a single user account by ID.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeNotFound(w, msgUserNotFound)
			return
		}
		s.logger.Error("user lookup failed", "user_id", id, "error", err)
		writeInternalError(w, "Erro ao buscar usuário.")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// handleUpdateUser rewrites a user account. The password is rehashed only
// when a new one is supplied; otherwise the stored hash is carried over.
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Nome == "" || req.Email == "" || req.Nivel == "" {
		writeBadRequest(w, msgAllFieldsRequired)
		return
	}
	if v := checkPayload(req); v != nil {
		writeValidationError(w, v.Field, v.Message)
		return
	}

	existing, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeNotFound(w, msgUserNotFound)
			return
		}
		s.logger.Error("user lookup failed", "user_id", id, "error", err)
		writeInternalError(w, "Erro ao atualizar usuário.")
		return
	}

	senha := existing.Senha
	if req.Senha != "" {
		senha, err = auth.HashPassword(req.Senha)
		if err != nil {
			s.logger.Error("password hashing failed", "user_id", id, "error", err)
			writeInternalError(w, "Erro ao atualizar usuário.")
			return
		}
	}

	user := &auth.User{
		ID:    id,
		Nome:  req.Nome,
		Email: req.Email,
		Senha: senha,
		Nivel: req.Nivel,
	}
	if err := s.users.Update(r.Context(), user); err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			writeNotFound(w, msgUserNotFound)
		case errors.Is(err, auth.ErrEmailExists):
			writeConflict(w, msgEmailTaken)
		default:
			s.logger.Error("user update failed", "user_id", id, "error", err)
			writeInternalError(w, "Erro ao atualizar usuário.")
		}
		return
	}

	s.notify(ChannelUsersUpdated)
	s.logger.Info("user updated", "user_id", id)
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// handleDeleteUser removes a user account. Success is 200 with an empty
// body; only the carros delete uses 204.
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeNotFound(w, msgUserNotFound)
			return
		}
		s.logger.Error("user delete failed", "user_id", id, "error", err)
		writeInternalError(w, "Erro ao excluir usuário.")
		return
	}

	s.notify(ChannelUsersUpdated)
	s.logger.Info("user deleted", "user_id", id)
	w.WriteHeader(http.StatusOK)
}

// pathID parses the {id} route parameter. Writes a 400 and returns false
// when the parameter is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeBadRequest(w, "ID inválido.")
		return 0, false
	}
	return id, true
}
