// Package api provides HTTP handlers, middleware, and routing for the settings service.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CreativeUnicorns/loopsettings"
)

const maxBodyBytes = 1024 * 1024

// settingResponse is the body of GET /settings/{key}.
type settingResponse struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// handleGetAll returns the full current record.
func (s *Server) handleGetAll(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, r, http.StatusOK, s.store.GetAll())
}

// handleGetSetting returns one setting, falling back to its default when unset.
func (s *Server) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value, ok := s.store.Value(key)
	if !ok {
		s.respondWithError(w, r, http.StatusNotFound, "Setting not found", loopsettings.ErrNotFound)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, settingResponse{Key: key, Value: value})
}

// handleUpdate merges a partial JSON object into the settings.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()

	var partial map[string]any
	if err := decoder.Decode(&partial); err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	record, err := s.store.Update(r.Context(), loopsettings.Record(partial))
	if err != nil {
		if errors.Is(err, loopsettings.ErrInvalidValue) || errors.Is(err, loopsettings.ErrInvalidKey) {
			s.respondWithError(w, r, http.StatusBadRequest, "Invalid settings", err)
		} else {
			s.respondWithError(w, r, http.StatusInternalServerError, "Failed to update settings", err)
		}
		return
	}

	s.respondWithJSON(w, r, http.StatusOK, record)
}

// handleExport returns the current record as indented JSON.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	text, err := s.store.Export()
	if err != nil {
		s.respondWithError(w, r, http.StatusInternalServerError, "Failed to export settings", err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="daily-loop-settings.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, text)
}

// handleImport replaces the settings with the posted export text.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r.Body); err != nil {
		s.respondWithError(w, r, http.StatusBadRequest, "Unable to read request body", err)
		return
	}

	if err := s.store.Import(r.Context(), buf.String()); err != nil {
		if errors.Is(err, loopsettings.ErrImportParse) {
			s.respondWithError(w, r, http.StatusBadRequest, "Invalid settings file", err)
		} else {
			s.respondWithError(w, r, http.StatusInternalServerError, "Failed to import settings", err)
		}
		return
	}

	s.respondWithJSON(w, r, http.StatusOK, s.store.GetAll())
}

// handleAutoReset runs the daily task reset and reports whether it happened.
func (s *Server) handleAutoReset(w http.ResponseWriter, r *http.Request) {
	reset, err := s.store.AutoResetIfDue(r.Context())
	if err != nil {
		s.respondWithError(w, r, http.StatusInternalServerError, "Failed to reset tasks", err)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, map[string]bool{"reset": reset})
}

// handleUIState returns what the presentation layer was last told.
func (s *Server) handleUIState(w http.ResponseWriter, r *http.Request) {
	if s.ui == nil {
		s.respondWithError(w, r, http.StatusNotFound, "UI state is not enabled", nil)
		return
	}
	s.respondWithJSON(w, r, http.StatusOK, s.ui.Snapshot())
}
