package web

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"csvq/internal/core"

	"github.com/go-chi/chi/v5"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateDocument accepts raw CSV text as the request body, parses it,
// and stores the resulting table. The optional ?name= query parameter labels
// the document in listings and the audit log.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Query.MaxDocumentSize)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.respondError(w, r, fmt.Errorf("%w: body exceeds %d bytes", core.ErrDocumentTooLarge, maxErr.Limit))
			return
		}
		s.respondError(w, r, fmt.Errorf("read request body: %w", err))
		return
	}

	info, err := s.service.Store(r.Context(), r.URL.Query().Get("name"), string(data))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, info)
}

// handleListDocuments returns metadata for all stored documents.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"documents": s.service.List(),
	})
}

// handleGetDocument returns metadata for one document.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	info, err := s.service.Get(chi.URLParam(r, "documentID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// handleDeleteDocument removes a document from the store.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Delete(r.Context(), chi.URLParam(r, "documentID")); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetLine returns one row, cells joined with ", ".
func (s *Server) handleGetLine(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	id := chi.URLParam(r, "documentID")
	line, err := s.service.Line(r.Context(), id, index)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"documentId": id,
		"index":      index,
		"line":       line,
	})
}

// handleGetColumn returns one column as a value list.
func (s *Server) handleGetColumn(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	id := chi.URLParam(r, "documentID")
	values, err := s.service.Column(r.Context(), id, index)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"documentId": id,
		"index":      index,
		"values":     values,
	})
}

// handleSumColumn returns the int32 sum of a column, header excluded.
func (s *Server) handleSumColumn(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	id := chi.URLParam(r, "documentID")
	sum, err := s.service.Sum(r.Context(), id, index)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"documentId": id,
		"index":      index,
		"sum":        sum,
	})
}

// handleRenderTable returns the fixed-width text rendering of a document.
// The rendering is buffered so a missing document still gets a JSON error
// instead of a half-written body.
func (s *Server) handleRenderTable(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.service.RenderTo(r.Context(), chi.URLParam(r, "documentID"), &buf); err != nil {
		s.respondError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleAuditLog returns recent audit entries when auditing is configured.
func (s *Server) handleAuditLog(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := s.service.RecentAudit(r.Context(), limit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
	})
}

// indexParam parses the {index} path parameter as a non-negative integer.
func indexParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidIndex, raw)
	}
	return index, nil
}
