// Package httpapi exposes the validation engine over HTTP for
// editor frontends. The surface is deliberately small: validate a
// raw plan, patch a canonical one, and enumerate what the registry
// knows. Handlers never mutate shared state, so concurrent requests
// need no locking beyond the read-only registry.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"sceneplan/internal/app"
	"sceneplan/internal/types"
)

type Server struct {
	service app.Service
}

func NewServer(service app.Service) *Server {
	return &Server{service: service}
}

// Handler builds the route table. Request logging wraps every route.
func (s *Server) Handler(logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/plans/validate", s.handleValidate)
	mux.HandleFunc("POST /v1/plans/patch", s.handlePatch)
	mux.HandleFunc("GET /v1/concepts", s.handleConcepts)
	mux.HandleFunc("GET /v1/concepts/{concept}/{version}/controls", s.handleControls)

	chain := hlog.NewHandler(logger)(
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Dur("duration", duration).
				Msg("request served")
		})(mux))
	return chain
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var plan map[string]any
	if !decodeBody(w, r, &plan) {
		return
	}
	result := s.service.Validate(r.Context(), app.ValidateRequest{Plan: types.RawScenePlan(plan)})
	writeJSON(w, http.StatusOK, result)
}

type patchBody struct {
	Plan  types.CanonicalScenePlan `json:"canonicalScenePlan"`
	Delta map[string]any           `json:"delta"`
}

func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	var body patchBody
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Plan.Concept == "" || body.Plan.SchemaVersion == "" {
		writeError(w, http.StatusBadRequest, "canonicalScenePlan with concept and schemaVersion is required")
		return
	}
	result := s.service.Patch(r.Context(), app.PatchRequest{Plan: body.Plan, Delta: body.Delta})
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleConcepts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"concepts": s.service.ListConcepts()})
}

func (s *Server) handleControls(w http.ResponseWriter, r *http.Request) {
	controls, err := s.service.Controls(app.ControlsRequest{
		Concept: r.PathValue("concept"),
		Version: r.PathValue("version"),
	})
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"parameterControlSpecs": controls})
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeError(w, http.StatusBadRequest, "request body is not valid json")
		return false
	}
	return true
}

func statusForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeNotFound:
		return http.StatusNotFound
	case errbuilder.CodeInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
