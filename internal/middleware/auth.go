// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/campusforge/ideabank/internal/auth"
	"github.com/campusforge/ideabank/internal/model"
	"github.com/google/uuid"
)

type callerContextKey string

var CallerKey callerContextKey = "ideabank_caller"

// AuthMiddleware creates a middleware that validates JWT tokens and places
// the caller identity {id, role} into the request context. Unauthenticated
// calls fail here, before reaching any handler.
func AuthMiddleware(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondWithError(w, http.StatusUnauthorized, "No authorization header")
				return
			}

			// Check Bearer prefix
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondWithError(w, http.StatusUnauthorized, "Invalid authorization header")
				return
			}

			// Validate token
			claims, err := tokenManager.Validate(parts[1])
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil || !claims.Role.Valid() {
				respondWithError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			caller := model.Caller{ID: userID, Role: claims.Role, Name: claims.Name}
			ctx := context.WithValue(r.Context(), CallerKey, caller)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFrom extracts the authenticated caller placed by AuthMiddleware.
func CallerFrom(ctx context.Context) (model.Caller, bool) {
	caller, ok := ctx.Value(CallerKey).(model.Caller)
	return caller, ok
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
