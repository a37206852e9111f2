package api

import (
	"errors"
	"net/http"

	"github.com/autolote/autolote-core/internal/catalog"
)

const msgCarroNotFound = "Carro não encontrado!"

// handleListCarros returns the full vehicle inventory.
func (s *Server) handleListCarros(w http.ResponseWriter, r *http.Request) {
	carros, err := s.carros.List(r.Context())
	if err != nil {
		s.logger.Error("carro list failed", "error", err)
		writeInternalError(w, "Erro ao listar carros.")
		return
	}
	writeJSON(w, http.StatusOK, carros)
}

// handleGetCarro returns a single vehicle by ID.
func (s *Server) handleGetCarro(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	carro, err := s.carros.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrCarroNotFound) {
			writeNotFound(w, msgCarroNotFound)
			return
		}
		s.logger.Error("carro lookup failed", "carro_id", id, "error", err)
		writeInternalError(w, "Erro ao buscar carro.")
		return
	}

	writeJSON(w, http.StatusOK, carro)
}

// handleCreateCarro adds a vehicle to the inventory.
func (s *Server) handleCreateCarro(w http.ResponseWriter, r *http.Request) {
	var carro catalog.Carro
	if !decodeJSON(w, r, &carro) {
		return
	}
	carro.ID = 0
	carro.Normalize()
	if v := checkPayload(carro); v != nil {
		writeValidationError(w, v.Field, v.Message)
		return
	}

	if err := s.carros.Create(r.Context(), &carro); err != nil {
		s.logger.Error("carro creation failed", "error", err)
		writeInternalError(w, "Erro ao cadastrar carro.")
		return
	}

	s.notify(ChannelCarrosUpdated)
	s.logger.Info("carro created", "carro_id", carro.ID, "marca", carro.Marca, "modelo", carro.Modelo)
	writeJSON(w, http.StatusCreated, carro)
}

// handleUpdateCarro rewrites a vehicle. The full payload contract applies;
// partial updates are not supported.
func (s *Server) handleUpdateCarro(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var carro catalog.Carro
	if !decodeJSON(w, r, &carro) {
		return
	}
	carro.ID = id
	carro.Normalize()
	if v := checkPayload(carro); v != nil {
		writeValidationError(w, v.Field, v.Message)
		return
	}

	if err := s.carros.Update(r.Context(), &carro); err != nil {
		if errors.Is(err, catalog.ErrCarroNotFound) {
			writeNotFound(w, msgCarroNotFound)
			return
		}
		s.logger.Error("carro update failed", "carro_id", id, "error", err)
		writeInternalError(w, "Erro ao atualizar carro.")
		return
	}

	s.notify(ChannelCarrosUpdated)
	s.logger.Info("carro updated", "carro_id", id)
	writeJSON(w, http.StatusOK, carro)
}

// handleDeleteCarro removes a vehicle from the inventory.
func (s *Server) handleDeleteCarro(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.carros.Delete(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrCarroNotFound) {
			writeNotFound(w, msgCarroNotFound)
			return
		}
		s.logger.Error("carro delete failed", "carro_id", id, "error", err)
		writeInternalError(w, "Erro ao excluir carro.")
		return
	}

	s.notify(ChannelCarrosUpdated)
	s.logger.Info("carro deleted", "carro_id", id)
	w.WriteHeader(http.StatusNoContent)
}
