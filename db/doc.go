// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Connections

Open selects the driver from the configured database type and pings it:

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

  - sqlite: modernc.org/sqlite, foreign keys and a busy timeout enabled
    through DSN pragmas, pool limited to one connection
  - postgres: github.com/lib/pq

# Schema Creation

CreateSchema initializes all required tables for the given dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - voter: registered voters, email unique, has_voted flag
  - candidate: candidates with optional party and a vote counter
  - vote: one row per voter (voter_id UNIQUE)

# Relationships

	voter     1──0..1 vote
	candidate 1──*    vote

Foreign keys have no ON DELETE action: a voter or candidate with a
recorded vote cannot be deleted.
*/
package db
