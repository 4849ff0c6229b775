// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/voting-registry/cliparse"
	"github.com/danielhkuo/voting-registry/middleware"
	"github.com/danielhkuo/voting-registry/models"
	"github.com/danielhkuo/voting-registry/store"
)

type VoteHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewVoteHandler(s *store.Store, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{store: s, cfg: cfg}
}

// CastVote handles POST /votes
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := middleware.Validate(&req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	voterID, candidateID := *req.VoterID, *req.CandidateID

	vote, err := h.store.CastVote(r.Context(), voterID, candidateID)
	switch {
	case errors.Is(err, store.ErrVoterNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
		return
	case errors.Is(err, store.ErrCandidateNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Voter or candidate not found")
		return
	case errors.Is(err, store.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Voter has already voted")
		return
	case err != nil:
		databaseError(w, r, "failed to cast vote", err,
			"voter_id", voterID, "candidate_id", candidateID)
		return
	}

	slog.Info("vote cast", "vote_id", vote.ID, "voter_id", vote.VoterID, "candidate_id", vote.CandidateID)

	middleware.JSONResponse(w, http.StatusCreated, vote)
}

// ListVotes handles GET /votes?skip&limit
func (h *VoteHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := pagination(r, h.cfg.DefaultPageLimit)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	votes, err := h.store.ListVotes(r.Context(), skip, limit)
	if err != nil {
		databaseError(w, r, "failed to list votes", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}

// GetVote handles GET /votes/{id}
func (h *VoteHandler) GetVote(w http.ResponseWriter, r *http.Request) {
	voteID, err := pathID(r, "id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	vote, err := h.store.GetVote(r.Context(), voteID)
	if errors.Is(err, store.ErrVoteNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Vote not found")
		return
	}
	if err != nil {
		databaseError(w, r, "failed to query vote", err, "vote_id", voteID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, vote)
}

// GetStatistics handles GET /votes/statistics
// Recomputed from the vote table on every call
func (h *VoteHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Statistics(r.Context())
	if err != nil {
		databaseError(w, r, "failed to compute statistics", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}
