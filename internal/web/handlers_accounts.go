package web

import (
	"encoding/json"
	"net/http"

	"github.com/candeia/chants/internal/logging"
)

type createAccountRequest struct {
	Email string `json:"email"`
}

// handleCreateAccount registers a new account and returns it with its bearer
// token. The token is shown only in this response.
func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := s.store.CreateAccount(r.Context(), req.Email)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("account created", "uid", account.UID)
	writeJSONStatus(w, http.StatusCreated, account)
}

// handleDeleteAccount permanently removes the caller's account. The schema
// cascades, removing every song and the prompter settings row with it.
func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	owned, err := s.owned(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if err := owned.DeleteAccount(r.Context()); err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("account deleted", "uid", owned.Owner())
	w.WriteHeader(http.StatusNoContent)
}
