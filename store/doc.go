// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data-access layer for voters, candidates and votes.

# Usage

A Store wraps the shared connection pool and is created once:

	s := store.New(conn)
	voter, err := s.CreateVoter(r.Context(), "Alice", "alice@example.com")

Every method takes the request context.

# Units of Work

InTx runs a function against a transaction-scoped Store. The transaction
commits when the function returns nil and rolls back on any error:

	err := s.InTx(ctx, func(tx *store.Store) error {
		if _, err := tx.CreateVote(ctx, voterID, candidateID); err != nil {
			return err
		}
		return tx.MarkVoterVoted(ctx, voterID)
	})

# Casting Votes

CastVote checks the voter and candidate, inserts the vote, flips the
voter's has_voted flag and increments the candidate counter in one
transaction. Double votes are rejected three ways: the has_voted check,
the UNIQUE constraint on vote.voter_id, and the conditional update in
MarkVoterVoted.

# Errors

Domain conditions are sentinel errors, matched with errors.Is:

  - ErrNotFound (ErrVoterNotFound, ErrCandidateNotFound, ErrVoteNotFound)
  - ErrConflict (ErrDuplicateEmail, ErrAlreadyVoted, ErrHasVotes)

Constraint violations are recognised for both lib/pq and modernc.org/sqlite.

# Deletion

Deleting a voter or candidate that is referenced by a vote fails with
ErrHasVotes. Deleting a missing record returns false and no error.
*/
package store
