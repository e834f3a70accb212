package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/export"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListDrivers(w http.ResponseWriter, r *http.Request) {
	drivers, err := s.svc.Drivers.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, drivers)
}

type weightRequest struct {
	Weight *int `json:"weight"`
}

func (s *Server) handleSetDriverWeight(w http.ResponseWriter, r *http.Request) {
	var req weightRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Weight == nil {
		s.writeError(w, http.StatusBadRequest, "weight is required")
		return
	}
	if err := s.svc.Drivers.SetWeight(r.Context(), chi.URLParam(r, "id"), *req.Weight); err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.handleAlignment(w, r)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.svc.Projects.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, projects)
}

func (s *Server) handleAlignment(w http.ResponseWriter, r *http.Request) {
	resp, err := s.svc.Alignment.Rank(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := s.svc.Resources.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resources)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.svc.Tasks.List(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleLevelingGrid(w http.ResponseWriter, r *http.Request) {
	grid, err := s.svc.Leveling.Grid(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, grid)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.URL.Query().Get("week"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "week must be an integer")
		return
	}
	resp, err := s.svc.Leveling.Suggest(r.Context(), app.SuggestionsRequest{
		ResourceID: r.URL.Query().Get("resource"),
		Week:       week,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApplySuggestion(w http.ResponseWriter, r *http.Request) {
	var req app.ApplySuggestionRequest
	if !s.decode(w, r, &req) {
		return
	}
	resp, err := s.svc.Leveling.Apply(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	view, err := s.svc.Scenario.Show(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

type adjustRequest struct {
	Delay        int     `json:"delay"`
	BudgetChange float64 `json:"budgetChange"`
}

func (s *Server) handleAdjustScenario(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if !s.decode(w, r, &req) {
		return
	}
	view, err := s.svc.Scenario.Adjust(r.Context(), app.AdjustScenarioRequest{
		ProjectID:    chi.URLParam(r, "id"),
		Delay:        req.Delay,
		BudgetChange: req.BudgetChange,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleResetScenario(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Scenario.Reset(r.Context()); err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.handleScenario(w, r)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	if err := s.svc.Export.ExportCSV(r.Context(), w); err != nil {
		s.log.Error().Err(err).Msg("export failed")
		s.writeError(w, http.StatusInternalServerError, "export failed")
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

type errorResponse struct {
	Error  string                  `json:"error"`
	Code   string                  `json:"code,omitempty"`
	Fields domain.ValidationErrors `json:"fields,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps service errors onto HTTP statuses: not found is
// 404, validation and leveling request errors are 400, the rest are 500.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	var le *app.LevelingError
	var many domain.ValidationErrors
	var one domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &le):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: le.Message, Code: string(le.Code)})
	case errors.As(err, &many):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Fields: many})
	case errors.As(err, &one):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Fields: domain.ValidationErrors{one}})
	default:
		s.log.Error().Err(err).Msg("request failed")
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
