// Package server exposes the gap-analysis pipeline over HTTP. One POST
// drives one pipeline execution; the handler blocks until the pipeline
// finishes, however long the model calls take.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/sponsor-gap-api/internal/logging"
	"github.com/sells-group/sponsor-gap-api/internal/model"
	"github.com/sells-group/sponsor-gap-api/internal/pipeline"
)

// Runner executes one gap-analysis pipeline run.
type Runner interface {
	Run(ctx context.Context, clubName string) (*model.PipelineResult, error)
}

// Server holds the HTTP surface around the pipeline.
type Server struct {
	pipeline Runner
}

// New creates a Server around the given pipeline.
func New(p Runner) *Server {
	return &Server{pipeline: p}
}

// Handler builds the router with the full middleware chain.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/gap-analysis", s.handleGapAnalysis)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGapAnalysis(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())

	var req struct {
		ClubName string `json:"club_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body", requestID)
		return
	}

	club := strings.TrimSpace(req.ClubName)
	if club == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "club_name is required", requestID)
		return
	}

	log := logging.FromContext(r.Context()).With(zap.String("club", club))
	log.Info("gap analysis requested")

	result, err := s.pipeline.Run(r.Context(), club)
	if err != nil {
		log.Error("gap analysis failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, errorCode(err), err.Error(), requestID)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// errorCode maps a pipeline error onto the stable error field of the JSON
// error document.
func errorCode(err error) string {
	var emptyErr *pipeline.EmptyResponseError
	if errors.As(err, &emptyErr) {
		return "empty_response"
	}
	var extractionErr *pipeline.ExtractionError
	if errors.As(err, &extractionErr) {
		return "extraction_failed"
	}
	return "internal_error"
}

// errorDocument is the uniform JSON error body.
type errorDocument struct {
	Error     string `json:"error"`
	Detail    string `json:"detail"`
	RequestID string `json:"request_id"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, code, detail, requestID string) {
	writeJSON(w, status, errorDocument{Error: code, Detail: detail, RequestID: requestID})
}
