// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/voting-registry/cliparse"
	"github.com/danielhkuo/voting-registry/handlers"
	"github.com/danielhkuo/voting-registry/middleware"
	"github.com/danielhkuo/voting-registry/models"
	"github.com/danielhkuo/voting-registry/store"
)

// APIVersion is reported by the root endpoint
const APIVersion = "v1"

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// The store shares the pool; each request runs its own unit of work
	s := store.New(db)

	voterHandler := handlers.NewVoterHandler(s, cfg)
	candidateHandler := handlers.NewCandidateHandler(s, cfg)
	voteHandler := handlers.NewVoteHandler(s, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voters
	mux.HandleFunc("POST /voters", middleware.WithLogging(voterHandler.RegisterVoter))
	mux.HandleFunc("GET /voters", middleware.WithLogging(voterHandler.ListVoters))
	mux.HandleFunc("GET /voters/{id}", middleware.WithLogging(voterHandler.GetVoter))
	mux.HandleFunc("GET /voters/{id}/vote", middleware.WithLogging(voterHandler.GetVoterVote))
	mux.HandleFunc("DELETE /voters/{id}", middleware.WithLogging(voterHandler.DeleteVoter))

	// Candidates
	mux.HandleFunc("POST /candidates", middleware.WithLogging(candidateHandler.RegisterCandidate))
	mux.HandleFunc("GET /candidates", middleware.WithLogging(candidateHandler.ListCandidates))
	mux.HandleFunc("GET /candidates/{id}", middleware.WithLogging(candidateHandler.GetCandidate))
	mux.HandleFunc("DELETE /candidates/{id}", middleware.WithLogging(candidateHandler.DeleteCandidate))

	// Votes ("statistics" is more specific than {id})
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.CastVote))
	mux.HandleFunc("GET /votes", middleware.WithLogging(voteHandler.ListVotes))
	mux.HandleFunc("GET /votes/statistics", middleware.WithLogging(voteHandler.GetStatistics))
	mux.HandleFunc("GET /votes/{id}", middleware.WithLogging(voteHandler.GetVote))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.RootResponse{
			Message: "voting-registry API",
			Version: APIVersion,
		})
	})

	return mux
}
