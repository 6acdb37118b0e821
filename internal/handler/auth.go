// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/campusforge/ideabank/internal/domain"
	"github.com/campusforge/ideabank/internal/service"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, domain.KindInvalidInput, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Signup(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User registration error",
			"error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			respondWithError(w, http.StatusConflict, domain.KindConflict, "Email already exists")
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidRole):
			respondWithError(w, http.StatusBadRequest, domain.KindInvalidInput, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, domain.KindUnavailable, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, output)
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, domain.KindInvalidInput, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Login(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User login error",
			"error", err, "requestID", chmw.GetReqID(r.Context()))
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondWithError(w, http.StatusUnauthorized, domain.KindForbidden, "Invalid email or password")
		case errors.Is(err, domain.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, domain.KindInvalidInput, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, domain.KindUnavailable, "Internal server error")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, output)
}
