package api

import (
	"encoding/json"
	"net/http"
	"path"

	"github.com/google/uuid"

	"github.com/matzehuels/depscan/pkg/buildinfo"
	"github.com/matzehuels/depscan/pkg/errors"
	"github.com/matzehuels/depscan/pkg/pipeline"
)

// ExtractRequest is the body of POST /v1/extract.
type ExtractRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	pipeline.Options
}

// ExtractResponse is the body of a successful POST /v1/extract.
type ExtractResponse struct {
	RunID string               `json:"runId"`
	File  *pipeline.FileResult `json:"file"`
}

// ManagerInfo describes one manager in GET /v1/managers.
type ManagerInfo struct {
	Name                 string   `json:"name"`
	Enabled              bool     `json:"enabled"`
	Extractor            bool     `json:"extractor"`
	FileMatch            []string `json:"fileMatch"`
	Categories           []string `json:"categories,omitempty"`
	SupportedDatasources []string `json:"supportedDatasources"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "build": buildinfo.Get()})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, pipeline.MaxFileSize+64<<10)

	var req ExtractRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if err := errors.ValidatePath(req.Path); err != nil {
		s.writeError(w, err)
		return
	}
	if err := errors.ValidateManifestFilename(path.Base(req.Path)); err != nil {
		s.writeError(w, err)
		return
	}
	if len(req.Content) > pipeline.MaxFileSize {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "content too large (max %d bytes)", pipeline.MaxFileSize))
		return
	}

	req.Options.SkipLockFiles = true
	res, err := s.runner.Extract(r.Context(), req.Path, req.Content, req.Options)
	if err != nil {
		s.writeError(w, err)
		return
	}
	runID := uuid.NewString()
	s.logger.Info("extracted", "run", runID, "path", req.Path, "manager", res.Manager, "deps", res.Deps(), "cached", res.Cached)
	writeJSON(w, http.StatusOK, ExtractResponse{RunID: runID, File: res})
}

func (s *Server) handleManagers(w http.ResponseWriter, r *http.Request) {
	out := make([]ManagerInfo, 0, len(s.runner.Managers))
	for _, m := range s.runner.Managers {
		out = append(out, ManagerInfo{
			Name:                 m.Name,
			Enabled:              m.Enabled,
			Extractor:            m.HasExtractor(),
			FileMatch:            m.FileMatch,
			Categories:           m.Categories,
			SupportedDatasources: m.SupportedDatasources,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"managers": out})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.counters.Snapshot())
}
