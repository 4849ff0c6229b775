// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the voting registry API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Service:

	GET /health - Liveness probe, plain "OK"
	GET /       - API name and version

Voters:

	POST   /voters           - Register voter
	GET    /voters           - List voters (skip, limit)
	GET    /voters/{id}      - Get voter
	GET    /voters/{id}/vote - Get the voter's vote
	DELETE /voters/{id}      - Delete voter without a vote

Candidates:

	POST   /candidates      - Register candidate
	GET    /candidates      - List candidates (skip, limit)
	GET    /candidates/{id} - Get candidate
	DELETE /candidates/{id} - Delete candidate without votes

Votes:

	POST /votes            - Cast vote
	GET  /votes            - List votes (skip, limit)
	GET  /votes/statistics - Per-candidate tallies and percentages
	GET  /votes/{id}       - Get vote

Every resource route is wrapped in middleware.WithLogging, which assigns
a request id. CORS is applied to the whole mux in main.
*/
package router
