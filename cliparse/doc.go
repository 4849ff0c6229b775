// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DefaultPageLimit: page size when a list request omits limit (default: 100)

# CLI Flags

	-p      Server port
	-d      Database URL
	-t      Database type
	-limit  Default page size

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	DEFAULT_PAGE_LIMIT → -limit

CLI flags take precedence over environment variables.

# Env Files

LoadDotEnv reads a .env file before flags are parsed. Variables already
present in the environment are not overwritten, and a missing file is
ignored:

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing
  - DATABASE_TYPE is neither sqlite nor postgres
  - PORT or DEFAULT_PAGE_LIMIT are not integers
  - the page limit is not positive
*/
package cliparse
