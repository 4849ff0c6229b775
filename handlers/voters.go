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

type VoterHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVoterHandler(s *store.Store, cfg cliparse.Config) *VoterHandler {
	return &VoterHandler{store: s, cfg: cfg}
}

// RegisterVoter handles POST /voters
func (h *VoterHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := middleware.Validate(&req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.store.GetVoterByEmail(r.Context(), req.Email)
	if err == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if !errors.Is(err, store.ErrVoterNotFound) {
		databaseError(w, r, "failed to query voter by email", err)
		return
	}

	// The UNIQUE constraint still catches a concurrent registration
	voter, err := h.store.CreateVoter(r.Context(), req.Name, req.Email)
	if errors.Is(err, store.ErrDuplicateEmail) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email already registered")
		return
	}
	if err != nil {
		databaseError(w, r, "failed to insert voter", err)
		return
	}

	slog.Info("voter registered", "voter_id", voter.ID)

	middleware.JSONResponse(w, http.StatusCreated, voter)
}

// ListVoters handles GET /voters?skip&limit
func (h *VoterHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := pagination(r, h.cfg.DefaultPageLimit)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	voters, err := h.store.ListVoters(r.Context(), skip, limit)
	if err != nil {
		databaseError(w, r, "failed to list voters", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voters)
}

// GetVoter handles GET /voters/{id}
func (h *VoterHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	voterID, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	voter, err := h.store.GetVoter(r.Context(), voterID)
	if errors.Is(err, store.ErrVoterNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
		return
	}
	if err != nil {
		databaseError(w, r, "failed to query voter", err, "voter_id", voterID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voter)
}

// GetVoterVote handles GET /voters/{id}/vote
func (h *VoterHandler) GetVoterVote(w http.ResponseWriter, r *http.Request) {
	voterID, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.store.GetVoter(r.Context(), voterID); err != nil {
		if errors.Is(err, store.ErrVoterNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
			return
		}
		databaseError(w, r, "failed to query voter", err, "voter_id", voterID)
		return
	}

	vote, err := h.store.GetVoteByVoter(r.Context(), voterID)
	if errors.Is(err, store.ErrVoteNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Vote not found")
		return
	}
	if err != nil {
		databaseError(w, r, "failed to query vote by voter", err, "voter_id", voterID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vote)
}

// DeleteVoter handles DELETE /voters/{id}
// Voters with a recorded vote cannot be deleted (409)
func (h *VoterHandler) DeleteVoter(w http.ResponseWriter, r *http.Request) {
	voterID, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := h.store.DeleteVoter(r.Context(), voterID)
	if errors.Is(err, store.ErrHasVotes) {
		middleware.ErrorResponse(w, http.StatusConflict, "Voter has a recorded vote and cannot be deleted")
		return
	}
	if err != nil {
		databaseError(w, r, "failed to delete voter", err, "voter_id", voterID)
		return
	}
	if !deleted {
		middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
		return
	}

	slog.Info("voter deleted", "voter_id", voterID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Voter deleted successfully",
	})
}
