package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/candeia/chants/internal/core"
	"github.com/candeia/chants/internal/logging"
)

// handleListSongs returns the caller's songs, optionally filtered with
// ?category= for the per-category dashboard listing.
func (s *Server) handleListSongs(w http.ResponseWriter, r *http.Request) {
	owned, err := s.owned(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var songs []core.Song
	if category := r.URL.Query().Get("category"); category != "" {
		songs, err = owned.ListSongsByCategory(r.Context(), core.Category(category))
	} else {
		songs, err = owned.ListSongs(r.Context())
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, songs)
}

func (s *Server) handleCreateSong(w http.ResponseWriter, r *http.Request) {
	owned, err := s.owned(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var fields core.SongFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	song, err := owned.CreateSong(r.Context(), fields)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, song)
}

func (s *Server) handleUpdateSong(w http.ResponseWriter, r *http.Request) {
	owned, err := s.owned(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "songID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	var fields core.SongFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	song, err := owned.UpdateSong(r.Context(), id, fields)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, song)
}

func (s *Server) handleDeleteSong(w http.ResponseWriter, r *http.Request) {
	owned, err := s.owned(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "songID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid song id")
		return
	}

	if err := owned.DeleteSong(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type deleteSelectedRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type deleteCountResponse struct {
	Deleted int64 `json:"deleted"`
}

// handleDeleteSelected removes the songs named in the request body. The UI
// asks the user to confirm before calling this; deletion is permanent.
func (s *Server) handleDeleteSelected(w http.ResponseWriter, r *http.Request) {
	owned, err := s.owned(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	var req deleteSelectedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.IDs) == 0 {
		writeError(w, http.StatusBadRequest, "no song ids provided")
		return
	}

	deleted, err := owned.DeleteSongs(r.Context(), req.IDs)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("songs deleted", "count", deleted)
	writeJSON(w, deleteCountResponse{Deleted: deleted})
}

// handleDeleteAllSongs empties the caller's repertoire. The irreversible
// bulk delete is double-confirmed in the UI and additionally requires
// confirm=all here, so a stray DELETE cannot wipe an account.
func (s *Server) handleDeleteAllSongs(w http.ResponseWriter, r *http.Request) {
	owned, err := s.owned(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if r.URL.Query().Get("confirm") != "all" {
		writeError(w, http.StatusBadRequest, "deleting all songs requires confirm=all")
		return
	}

	deleted, err := owned.DeleteAllSongs(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("all songs deleted", "count", deleted)
	writeJSON(w, deleteCountResponse{Deleted: deleted})
}
