package web

import (
	"fmt"
	"io"
	"net/http"

	"github.com/candeia/chants/internal/core"
	"github.com/candeia/chants/internal/logging"
)

type importResponse struct {
	Imported int `json:"imported"`
}

// handleImport accepts a multipart CSV upload and imports its songs. All
// rows are validated before the first write; the batch then commits in one
// transaction, so a failed import never leaves a partial repertoire.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	owned, err := s.owned(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	maxSize := s.cfg.Import.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	logger := logging.WithFields(r.Context(), "file", header.Filename, "bytes", len(data))

	imported, err := core.ImportCSV(r.Context(), owned, data)
	if err != nil {
		logger.Warn("import rejected", "error", err)
		s.respondError(w, r, err)
		return
	}

	logger.Info("import complete", "songs", imported)
	writeJSON(w, importResponse{Imported: imported})
}

// handleExport streams the caller's full repertoire as a CSV download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	owned, err := s.owned(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	text, err := core.ExportCSV(r.Context(), owned)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", core.ExportFileName))
	w.Write([]byte(text))
}
