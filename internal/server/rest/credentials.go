package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/server/credentials"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListCredentials(w http.ResponseWriter, r *http.Request) {

	userID, _ := UserIDFromContext(r.Context())

	list, err := s.credentials.ListAll(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		s.logger.Error(r.Context(), "list credentials failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetCredential(w http.ResponseWriter, r *http.Request) {

	userID, _ := UserIDFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	credential, err := s.credentials.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		s.logger.Error(r.Context(), "get credential failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, credential)
}

// handleCreateCredential answers 406 for every service-level failure,
// including title and per-site conflicts. The flat mapping is part of the
// public API contract.
func (s *Server) handleCreateCredential(w http.ResponseWriter, r *http.Request) {

	userID, _ := UserIDFromContext(r.Context())

	var params credentials.CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateCredentialParams(params); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	credential, err := s.credentials.Create(r.Context(), userID, params)
	if err != nil {
		if !errors.Is(err, common.ErrConflict) {
			s.logger.Error(r.Context(), "create credential failed", "error", err)
		}
		writeError(w, http.StatusNotAcceptable, "credential not acceptable")
		return
	}

	writeJSON(w, http.StatusCreated, credential)
}

// handleDeleteCredential answers 301 on success. The redirect status is a
// deliberate quirk of the public API and clients depend on it.
func (s *Server) handleDeleteCredential(w http.ResponseWriter, r *http.Request) {

	userID, _ := UserIDFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := s.credentials.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		s.logger.Error(r.Context(), "delete credential failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusMovedPermanently)
}
