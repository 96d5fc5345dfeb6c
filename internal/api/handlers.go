package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Kaper156/pygedcom/pkg/cache"
	"github.com/Kaper156/pygedcom/pkg/errors"
	"github.com/Kaper156/pygedcom/pkg/gedcom"
)

// maxBodyBytes caps uploaded GEDCOM text at 32MB.
const maxBodyBytes = 32 << 20

// handleVerify checks the body for structural validity without building a tree.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, gedcom.Verify(string(data)))
}

// handleParse parses the body and returns per-collection stats.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	p := gedcom.NewParser()
	if err := p.Parse(string(data)); err != nil {
		jsonError(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, p.Stats())
}

// handleExport parses the body and returns it in the requested format.
// Results are cached by content hash so repeated exports of the same file
// skip the parse entirely.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = gedcom.FormatJSON
	}
	emptyFields := r.URL.Query().Get("empty_fields") != "false"

	key := cache.ExportKey(cache.Hash(data), format, emptyFields)
	if out, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		s.writeExport(w, format, out)
		return
	}

	p := gedcom.NewParser()
	if err := p.Parse(string(data)); err != nil {
		jsonError(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}
	out, err := p.Export(format, emptyFields)
	if err != nil {
		jsonError(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}

	if err := s.cache.Set(r.Context(), key, []byte(out), cache.DefaultTTL); err != nil {
		s.log.Warn("cache export", "err", err)
	}
	s.writeExport(w, format, []byte(out))
}

func (s *Server) writeExport(w http.ResponseWriter, format string, out []byte) {
	if format == gedcom.FormatJSON {
		w.Header().Set("Content-Type", "application/json")
	} else {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	w.Write(out)
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		jsonError(w, "failed to read request body", http.StatusRequestEntityTooLarge)
		return nil, false
	}
	if len(data) == 0 {
		jsonError(w, "request body is empty", http.StatusBadRequest)
		return nil, false
	}
	return data, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
