// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrVoterNotFound     = fmt.Errorf("voter %w", ErrNotFound)
	ErrCandidateNotFound = fmt.Errorf("candidate %w", ErrNotFound)
	ErrVoteNotFound      = fmt.Errorf("vote %w", ErrNotFound)

	ErrConflict       = errors.New("conflict")
	ErrDuplicateEmail = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrAlreadyVoted   = fmt.Errorf("%w: voter has already voted", ErrConflict)
	ErrHasVotes       = fmt.Errorf("%w: record is referenced by a vote", ErrConflict)
)

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgForeignKeyViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) && liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}

	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
