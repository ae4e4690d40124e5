package web

import (
	"encoding/json"
	"net/http"

	"github.com/candeia/chants/internal/core"
)

// handleGetPrompter returns the caller's prompter settings, creating the
// defaults row on first access.
func (s *Server) handleGetPrompter(w http.ResponseWriter, r *http.Request) {
	owned, err := s.owned(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	settings, err := owned.GetOrCreateSettings(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, settings)
}

// handleUpdatePrompter applies a partial settings update; absent fields are
// left unchanged.
func (s *Server) handleUpdatePrompter(w http.ResponseWriter, r *http.Request) {
	owned, err := s.owned(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var fields core.PrompterFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := owned.UpdateSettings(r.Context(), fields)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, settings)
}
