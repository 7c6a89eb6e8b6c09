// Package chi exposes the HTTP API: streaming chat, interaction feedback,
// health, and metrics.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/gridiron/internal/domain"
	healthuc "github.com/kailas-cloud/gridiron/internal/usecase/health"
)

// ChatService answers one question, emitting events as it goes.
type ChatService interface {
	Respond(ctx context.Context, session, question string, emit domain.EmitFunc) *domain.Interaction
}

// FeedbackStore marks logged interactions correct or not.
type FeedbackStore interface {
	SetFeedback(ctx context.Context, id string, correct bool, category string) error
}

// HealthService aggregates component health checks.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// Server carries the HTTP handlers.
type Server struct {
	chat     ChatService
	feedback FeedbackStore
	health   HealthService
	logger   *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(chat ChatService, feedback FeedbackStore, health HealthService, logger *zap.Logger) *Server {
	return &Server{chat: chat, feedback: feedback, health: health, logger: logger}
}

// Register mounts the API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/chat", s.handleChat)
	r.Post("/interactions/feedback", s.handleFeedback)
	r.Get("/healthz", s.handleHealth)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

type chatRequest struct {
	Session  string `json:"session"`
	Question string `json:"question"`
}

// chatEvent is one NDJSON line of the chat stream.
type chatEvent struct {
	Response string `json:"response"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Bucket   string `json:"bucket,omitempty"`
}

type feedbackRequest struct {
	InteractionID string `json:"interaction_id"`
	Correct       *bool  `json:"correct"`
	Category      string `json:"category"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleChat answers one question over a chunked NDJSON stream. Each event
// is one JSON line flushed as soon as it is produced; the final line always
// carries status "done".
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "Question is required")
		return
	}
	if req.Session == "" {
		req.Session = uuid.NewString()
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error", "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("X-Session-ID", req.Session)
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	emit := func(e domain.Event) {
		if err := enc.Encode(chatEvent{
			Response: e.Fragment,
			Type:     string(e.Kind),
			Status:   string(e.Status),
			Bucket:   e.Bucket.String(),
		}); err != nil {
			// Client went away; the pipeline finishes on its own.
			return
		}
		flusher.Flush()
	}

	s.chat.Respond(r.Context(), req.Session, req.Question, emit)
}

// handleFeedback marks a logged interaction correct or incorrect.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}
	if req.InteractionID == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "interaction_id is required")
		return
	}
	if req.Correct == nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "correct is required")
		return
	}

	err := s.feedback.SetFeedback(r.Context(), req.InteractionID, *req.Correct, req.Category)
	if err != nil {
		if errors.Is(err, domain.ErrInteractionNotFound) {
			writeError(w, http.StatusNotFound, "interaction_not_found", "interaction not found")
			return
		}
		s.logger.Error("set feedback", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleHealth reports aggregated component health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
