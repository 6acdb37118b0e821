// internal/handler/team.go
package handler

import (
	"net/http"

	"github.com/campusforge/ideabank/internal/service"
)

type TeamHandler struct {
	teamService *service.TeamService
}

func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) Request(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	ideaID, ok := pathID(w, r, "ideaId")
	if !ok {
		return
	}

	request, err := h.teamService.Request(r.Context(), ideaID, caller)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, request)
}

func (h *TeamHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	ideaID, ok := pathID(w, r, "ideaId")
	if !ok {
		return
	}

	requests, err := h.teamService.ListRequests(r.Context(), ideaID, caller)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, requests)
}

func (h *TeamHandler) Approve(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	requestID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	request, err := h.teamService.Approve(r.Context(), requestID, caller)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, request)
}

func (h *TeamHandler) Deny(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	requestID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	request, err := h.teamService.Deny(r.Context(), requestID, caller)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, request)
}
