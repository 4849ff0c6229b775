// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the voting registry API server.

The registry records voters and candidates, lets each voter cast at most
one vote, and reports per-candidate tallies and percentages.

# Starting the Server

The server reads configuration from CLI flags, the environment, or a .env
file in the working directory:

	DATABASE_URL=registry.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DEFAULT_PAGE_LIMIT (-limit): page size when limit is omitted (default: 100)

Flags override environment variables, which override .env entries.

# Architecture

  - handlers: HTTP request handlers (voters, candidates, votes)
  - router: Route definitions using Go 1.22+ routing
  - store: Queries and the vote-casting transaction
  - middleware: CORS, logging, request ids, JSON helpers, validation
  - models: Request/response types
  - db: Connection opening and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
