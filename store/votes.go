// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/voting-registry/models"
)

const voteColumns = `id, voter_id, candidate_id`

func scanVote(row interface{ Scan(...any) error }) (models.Vote, error) {
	var v models.Vote
	err := row.Scan(&v.ID, &v.VoterID, &v.CandidateID)
	return v, err
}

// CreateVote inserts a vote row only. Use CastVote to record a vote
// together with the voter flag and the candidate counter.
func (s *Store) CreateVote(ctx context.Context, voterID, candidateID int64) (models.Vote, error) {
	vote := models.Vote{VoterID: voterID, CandidateID: candidateID}

	err := s.q.QueryRowContext(ctx, `
		INSERT INTO vote (voter_id, candidate_id)
		VALUES ($1, $2)
		RETURNING id
	`, voterID, candidateID).Scan(&vote.ID)

	switch {
	case isUniqueViolation(err):
		return models.Vote{}, ErrAlreadyVoted
	case isForeignKeyViolation(err):
		return models.Vote{}, fmt.Errorf("voter or candidate %w", ErrNotFound)
	case err != nil:
		return models.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	return vote, nil
}

func (s *Store) GetVote(ctx context.Context, id int64) (models.Vote, error) {
	vote, err := scanVote(s.q.QueryRowContext(ctx, `
		SELECT `+voteColumns+` FROM vote WHERE id = $1
	`, id))

	if errors.Is(err, sql.ErrNoRows) {
		return models.Vote{}, ErrVoteNotFound
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to query vote: %w", err)
	}
	return vote, nil
}

func (s *Store) GetVoteByVoter(ctx context.Context, voterID int64) (models.Vote, error) {
	vote, err := scanVote(s.q.QueryRowContext(ctx, `
		SELECT `+voteColumns+` FROM vote WHERE voter_id = $1
	`, voterID))

	if errors.Is(err, sql.ErrNoRows) {
		return models.Vote{}, ErrVoteNotFound
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to query vote by voter: %w", err)
	}
	return vote, nil
}

// ListVotes returns up to limit votes starting at offset, in insertion order
func (s *Store) ListVotes(ctx context.Context, offset, limit int) ([]models.Vote, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT `+voteColumns+` FROM vote
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		vote, err := scanVote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, vote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate votes: %w", err)
	}

	return votes, nil
}

func (s *Store) CountVotes(ctx context.Context) (int, error) {
	var count int
	if err := s.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM vote`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}

// CastVote records a vote for a candidate. The vote row, the voter's
// has_voted flag and the candidate's counter change together in one
// transaction; on any error none of them change.
//
// Errors: ErrVoterNotFound, ErrCandidateNotFound, ErrAlreadyVoted.
func (s *Store) CastVote(ctx context.Context, voterID, candidateID int64) (models.Vote, error) {
	var vote models.Vote

	err := s.InTx(ctx, func(tx *Store) error {
		voter, err := tx.GetVoter(ctx, voterID)
		if err != nil {
			return err
		}
		if voter.HasVoted {
			return ErrAlreadyVoted
		}

		if _, err := tx.GetCandidate(ctx, candidateID); err != nil {
			return err
		}

		vote, err = tx.CreateVote(ctx, voterID, candidateID)
		if err != nil {
			return err
		}

		if err := tx.MarkVoterVoted(ctx, voterID); err != nil {
			return err
		}

		return tx.IncrementCandidateVotes(ctx, candidateID)
	})
	if err != nil {
		return models.Vote{}, err
	}

	return vote, nil
}
