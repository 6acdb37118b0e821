// internal/handler/common.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campusforge/ideabank/internal/domain"
	"github.com/campusforge/ideabank/internal/middleware"
	"github.com/campusforge/ideabank/internal/model"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	Kind  domain.Kind `json:"kind"`
	Error string      `json:"error"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, kind domain.Kind, message string) {
	respondWithJSON(w, code, ErrorResponse{Kind: kind, Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithDomainError maps the error taxonomy onto HTTP status codes.
// Collaborator failures are logged and masked.
func respondWithDomainError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	switch kind {
	case domain.KindInvalidInput, domain.KindInvalidState:
		respondWithError(w, http.StatusBadRequest, kind, err.Error())
	case domain.KindForbidden:
		respondWithError(w, http.StatusForbidden, kind, err.Error())
	case domain.KindNotFound:
		respondWithError(w, http.StatusNotFound, kind, err.Error())
	case domain.KindConflict:
		respondWithError(w, http.StatusConflict, kind, err.Error())
	default:
		slog.ErrorContext(r.Context(), "internal error",
			"error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, domain.KindUnavailable, "Internal server error")
	}
}

// callerFrom pulls the authenticated identity placed by the auth middleware.
func callerFrom(w http.ResponseWriter, r *http.Request) (model.Caller, bool) {
	caller, ok := middleware.CallerFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, domain.KindForbidden, "Unauthenticated")
		return model.Caller{}, false
	}
	return caller, true
}

// pathID parses a uuid path parameter; responds 404 when malformed, since a
// non-uuid id cannot name any entity.
func pathID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		respondWithError(w, http.StatusNotFound, domain.KindNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}
