package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/server/networks"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListNetworks(w http.ResponseWriter, r *http.Request) {

	userID, _ := UserIDFromContext(r.Context())

	list, err := s.networks.ListAll(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		s.logger.Error(r.Context(), "list networks failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetNetwork(w http.ResponseWriter, r *http.Request) {

	userID, _ := UserIDFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	network, err := s.networks.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		s.logger.Error(r.Context(), "get network failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, network)
}

func (s *Server) handleCreateNetwork(w http.ResponseWriter, r *http.Request) {

	userID, _ := UserIDFromContext(r.Context())

	var params networks.CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateNetworkParams(params); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	network, err := s.networks.Create(r.Context(), userID, params)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			writeError(w, http.StatusConflict, "title already in use")
			return
		}
		s.logger.Error(r.Context(), "create network failed", "error", err)
		writeError(w, http.StatusNotAcceptable, "network not acceptable")
		return
	}

	writeJSON(w, http.StatusCreated, network)
}

// handleDeleteNetwork keeps two quirks of the public API: 301 on success, and
// 204 for a missing, zero or non-numeric id instead of an error.
func (s *Server) handleDeleteNetwork(w http.ResponseWriter, r *http.Request) {

	userID, _ := UserIDFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := s.networks.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		s.logger.Error(r.Context(), "delete network failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusMovedPermanently)
}
