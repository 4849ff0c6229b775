// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/voting-registry/cliparse"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	var schema string
	switch databaseType {
	case cliparse.DatabasePostgres:
		schema = postgresSchema
	case cliparse.DatabaseSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("unsupported database type %q", databaseType)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DropSchema removes all application tables. Used by tests.
func DropSchema(db *sql.DB) error {
	_, err := db.Exec(`
		DROP TABLE IF EXISTS vote;
		DROP TABLE IF EXISTS candidate;
		DROP TABLE IF EXISTS voter;
	`)
	if err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}

const postgresSchema = `
-- Voters
CREATE TABLE IF NOT EXISTS voter (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL UNIQUE,
    has_voted BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_voter_name ON voter(name);
CREATE INDEX IF NOT EXISTS idx_voter_has_voted ON voter(has_voted);

-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    party VARCHAR(255),
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0)
);

CREATE INDEX IF NOT EXISTS idx_candidate_name ON candidate(name);

-- Votes (one per voter)
CREATE TABLE IF NOT EXISTS vote (
    id BIGSERIAL PRIMARY KEY,
    voter_id BIGINT NOT NULL UNIQUE REFERENCES voter(id),
    candidate_id BIGINT NOT NULL REFERENCES candidate(id)
);

CREATE INDEX IF NOT EXISTS idx_vote_candidate_id ON vote(candidate_id);
`

const sqliteSchema = `
-- Voters
CREATE TABLE IF NOT EXISTS voter (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    has_voted BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS idx_voter_name ON voter(name);
CREATE INDEX IF NOT EXISTS idx_voter_has_voted ON voter(has_voted);

-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    party TEXT,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0)
);

CREATE INDEX IF NOT EXISTS idx_candidate_name ON candidate(name);

-- Votes (one per voter)
CREATE TABLE IF NOT EXISTS vote (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    voter_id INTEGER NOT NULL UNIQUE REFERENCES voter(id),
    candidate_id INTEGER NOT NULL REFERENCES candidate(id)
);

CREATE INDEX IF NOT EXISTS idx_vote_candidate_id ON vote(candidate_id);
`
