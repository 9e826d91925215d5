package http

import (
	"encoding/json"
	"net/http"

	"seo-content-engine/internal/middleware"
	"seo-content-engine/internal/services/content"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ContentHandler handles content generation requests
type ContentHandler struct {
	service *content.Service
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(service *content.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// RegisterRoutes registers all content routes
func (h *ContentHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/content", func(r chi.Router) {
		r.Post("/generate", h.Generate)
	})
}

// Generate handles article generation. Single-section regeneration requests
// short-circuit with a reduced envelope; everything else runs the full
// pipeline. Provider failures never reach this layer — only a malformed
// body or an unexpected fault produces a 500.
func (h *ContentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req content.ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, requestID, "invalid request body", err.Error())
		return
	}

	if req.Title == "" {
		writeError(w, requestID, "title is required", "the title field must be a non-empty string")
		return
	}

	if req.RegenerateSection != "" {
		writeJSON(w, h.service.RegenerateSection(r.Context(), &req, requestID))
		return
	}

	writeJSON(w, h.service.Generate(r.Context(), &req, requestID))
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, requestID, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	resp := content.ErrorResponse{
		Error:     message,
		Details:   details,
		Success:   false,
		RequestID: requestID,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, message, http.StatusInternalServerError)
	}
}
