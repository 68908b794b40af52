package server

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/careerpilot/roadmap-agent/internal/pipeline"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

// handlePlan runs the full roadmap pipeline for a quiz submission.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var quiz types.QuizInput
	if err := json.NewDecoder(r.Body).Decode(&quiz); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := quiz.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "quiz validation failed: "+err.Error())
		return
	}

	roadmap, err := pipeline.Run(r.Context(), s.deps, &quiz, pipeline.RunOptions{
		APIKey:      s.apiKey,
		DatabaseURL: s.databaseURL,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "plan generation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, roadmap)
}

// handleCareers lists the careers with a seeded pathway table entry.
// Careers outside this list still work; they go through live research
// or the generic fallback instead.
func (s *Server) handleCareers(w http.ResponseWriter, _ *http.Request) {
	careers := make([]string, 0, len(s.deps.Tables.Pathways))
	for career := range s.deps.Tables.Pathways {
		careers = append(careers, career)
	}
	sort.Strings(careers)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"careers": careers,
		"count":   len(careers),
	})
}

// handleGetRun returns the status of a persisted pipeline run.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "run persistence is not enabled")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get run: "+err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "run not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, run)
}

// handleRunArtifacts returns every artifact stored for a run.
func (s *Server) handleRunArtifacts(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "run persistence is not enabled")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.db.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get run: "+err.Error())
		return
	}
	if run == nil {
		s.errorResponse(w, http.StatusNotFound, "run not found")
		return
	}

	artifacts, err := s.db.ListArtifacts(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list artifacts: "+err.Error())
		return
	}

	items := make([]map[string]any, 0, len(artifacts))
	for _, a := range artifacts {
		items = append(items, map[string]any{
			"step":       a.Step,
			"category":   a.Category,
			"content":    json.RawMessage(a.Content),
			"created_at": a.CreatedAt.Format(time.RFC3339),
		})
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"run_id":    runID.String(),
		"artifacts": items,
		"count":     len(items),
	})
}

// handleGetArtifact returns a single pipeline artifact by step name.
func (s *Server) handleGetArtifact(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusNotFound, "run persistence is not enabled")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	step := r.PathValue("step")
	content, err := s.db.GetArtifact(r.Context(), runID, step)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get artifact: "+err.Error())
		return
	}
	if content == nil {
		s.errorResponse(w, http.StatusNotFound, "artifact not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"run_id":  runID.String(),
		"step":    step,
		"content": json.RawMessage(content),
	})
}
