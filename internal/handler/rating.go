// internal/handler/rating.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/campusforge/ideabank/internal/domain"
	"github.com/campusforge/ideabank/internal/service"
)

type RatingHandler struct {
	ratingService *service.RatingService
}

func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

func (h *RatingHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := callerFrom(w, r); !ok {
		return
	}
	ideaID, ok := pathID(w, r, "ideaId")
	if !ok {
		return
	}

	ratings, err := h.ratingService.List(r.Context(), ideaID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ratings)
}

func (h *RatingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	ideaID, ok := pathID(w, r, "ideaId")
	if !ok {
		return
	}

	var input service.SubmitRatingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, domain.KindInvalidInput, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	rating, err := h.ratingService.Submit(r.Context(), ideaID, caller, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, rating)
}
