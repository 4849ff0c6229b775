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

const voterColumns = `id, name, email, has_voted`

func scanVoter(row interface{ Scan(...any) error }) (models.Voter, error) {
	var v models.Voter
	err := row.Scan(&v.ID, &v.Name, &v.Email, &v.HasVoted)
	return v, err
}

// CreateVoter inserts a voter with has_voted = false.
// Returns ErrDuplicateEmail if the email is already registered.
func (s *Store) CreateVoter(ctx context.Context, name, email string) (models.Voter, error) {
	voter := models.Voter{Name: name, Email: email}

	err := s.q.QueryRowContext(ctx, `
		INSERT INTO voter (name, email, has_voted)
		VALUES ($1, $2, FALSE)
		RETURNING id
	`, name, email).Scan(&voter.ID)

	if isUniqueViolation(err) {
		return models.Voter{}, ErrDuplicateEmail
	}
	if err != nil {
		return models.Voter{}, fmt.Errorf("failed to insert voter: %w", err)
	}

	return voter, nil
}

func (s *Store) GetVoter(ctx context.Context, id int64) (models.Voter, error) {
	voter, err := scanVoter(s.q.QueryRowContext(ctx, `
		SELECT `+voterColumns+` FROM voter WHERE id = $1
	`, id))

	if errors.Is(err, sql.ErrNoRows) {
		return models.Voter{}, ErrVoterNotFound
	}
	if err != nil {
		return models.Voter{}, fmt.Errorf("failed to query voter: %w", err)
	}
	return voter, nil
}

func (s *Store) GetVoterByEmail(ctx context.Context, email string) (models.Voter, error) {
	voter, err := scanVoter(s.q.QueryRowContext(ctx, `
		SELECT `+voterColumns+` FROM voter WHERE email = $1
	`, email))

	if errors.Is(err, sql.ErrNoRows) {
		return models.Voter{}, ErrVoterNotFound
	}
	if err != nil {
		return models.Voter{}, fmt.Errorf("failed to query voter by email: %w", err)
	}
	return voter, nil
}

// ListVoters returns up to limit voters starting at offset, in insertion order
func (s *Store) ListVoters(ctx context.Context, offset, limit int) ([]models.Voter, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT `+voterColumns+` FROM voter
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query voters: %w", err)
	}
	defer rows.Close()

	voters := []models.Voter{}
	for rows.Next() {
		voter, err := scanVoter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		voters = append(voters, voter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate voters: %w", err)
	}

	return voters, nil
}

// DeleteVoter removes a voter. It returns false when no voter has the id,
// and ErrHasVotes when the voter has already cast a vote.
func (s *Store) DeleteVoter(ctx context.Context, id int64) (bool, error) {
	deleted := false

	err := s.InTx(ctx, func(tx *Store) error {
		if _, err := tx.GetVoter(ctx, id); err != nil {
			if errors.Is(err, ErrVoterNotFound) {
				return nil
			}
			return err
		}

		if _, err := tx.GetVoteByVoter(ctx, id); err == nil {
			return ErrHasVotes
		} else if !errors.Is(err, ErrVoteNotFound) {
			return err
		}

		res, err := tx.q.ExecContext(ctx, `DELETE FROM voter WHERE id = $1`, id)
		if isForeignKeyViolation(err) {
			return ErrHasVotes
		}
		if err != nil {
			return fmt.Errorf("failed to delete voter: %w", err)
		}

		n, err := rowsAffected(res)
		if err != nil {
			return err
		}
		deleted = n == 1
		return nil
	})

	return deleted, err
}

// MarkVoterVoted flips has_voted from false to true. The update only
// matches voters that have not voted yet, so two concurrent callers can
// never both succeed.
func (s *Store) MarkVoterVoted(ctx context.Context, id int64) error {
	res, err := s.q.ExecContext(ctx, `
		UPDATE voter SET has_voted = TRUE
		WHERE id = $1 AND has_voted = FALSE
	`, id)
	if err != nil {
		return fmt.Errorf("failed to update voter: %w", err)
	}

	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	// Nothing updated: either the voter is gone or already voted
	if _, err := s.GetVoter(ctx, id); err != nil {
		return err
	}
	return ErrAlreadyVoted
}

func (s *Store) CountVotersWhoVoted(ctx context.Context) (int, error) {
	var count int
	err := s.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM voter WHERE has_voted = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count voters who voted: %w", err)
	}
	return count, nil
}
