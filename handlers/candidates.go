// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/voting-registry/cliparse"
	"github.com/danielhkuo/voting-registry/middleware"
	"github.com/danielhkuo/voting-registry/models"
	"github.com/danielhkuo/voting-registry/store"
)

type CandidateHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewCandidateHandler(s *store.Store, cfg cliparse.Config) *CandidateHandler {
	return &CandidateHandler{store: s, cfg: cfg}
}

// RegisterCandidate handles POST /candidates
func (h *CandidateHandler) RegisterCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Party != nil {
		party := strings.TrimSpace(*req.Party)
		if party == "" {
			req.Party = nil
		} else {
			req.Party = &party
		}
	}
	if err := middleware.Validate(&req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	candidate, err := h.store.CreateCandidate(r.Context(), req.Name, req.Party)
	if err != nil {
		databaseError(w, r, "failed to insert candidate", err)
		return
	}

	slog.Info("candidate registered", "candidate_id", candidate.ID, "name", candidate.Name)

	middleware.JSONResponse(w, http.StatusCreated, candidate)
}

// ListCandidates handles GET /candidates?skip&limit
func (h *CandidateHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := pagination(r, h.cfg.DefaultPageLimit)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	candidates, err := h.store.ListCandidates(r.Context(), skip, limit)
	if err != nil {
		databaseError(w, r, "failed to list candidates", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// GetCandidate handles GET /candidates/{id}
func (h *CandidateHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	candidate, err := h.store.GetCandidate(r.Context(), candidateID)
	if errors.Is(err, store.ErrCandidateNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		databaseError(w, r, "failed to query candidate", err, "candidate_id", candidateID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidate)
}

// DeleteCandidate handles DELETE /candidates/{id}
// Candidates that received votes cannot be deleted (409)
func (h *CandidateHandler) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := h.store.DeleteCandidate(r.Context(), candidateID)
	if errors.Is(err, store.ErrHasVotes) {
		middleware.ErrorResponse(w, http.StatusConflict, "Candidate has recorded votes and cannot be deleted")
		return
	}
	if err != nil {
		databaseError(w, r, "failed to delete candidate", err, "candidate_id", candidateID)
		return
	}
	if !deleted {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	slog.Info("candidate deleted", "candidate_id", candidateID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Candidate deleted successfully",
	})
}
