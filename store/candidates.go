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

const candidateColumns = `id, name, party, votes`

func scanCandidate(row interface{ Scan(...any) error }) (models.Candidate, error) {
	var c models.Candidate
	var party sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &party, &c.Votes); err != nil {
		return models.Candidate{}, err
	}
	if party.Valid {
		c.Party = &party.String
	}
	return c, nil
}

// CreateCandidate inserts a candidate with a zero vote counter.
// party may be nil.
func (s *Store) CreateCandidate(ctx context.Context, name string, party *string) (models.Candidate, error) {
	candidate := models.Candidate{Name: name, Party: party}

	err := s.q.QueryRowContext(ctx, `
		INSERT INTO candidate (name, party, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, name, party).Scan(&candidate.ID)
	if err != nil {
		return models.Candidate{}, fmt.Errorf("failed to insert candidate: %w", err)
	}

	return candidate, nil
}

func (s *Store) GetCandidate(ctx context.Context, id int64) (models.Candidate, error) {
	candidate, err := scanCandidate(s.q.QueryRowContext(ctx, `
		SELECT `+candidateColumns+` FROM candidate WHERE id = $1
	`, id))

	if errors.Is(err, sql.ErrNoRows) {
		return models.Candidate{}, ErrCandidateNotFound
	}
	if err != nil {
		return models.Candidate{}, fmt.Errorf("failed to query candidate: %w", err)
	}
	return candidate, nil
}

// ListCandidates returns up to limit candidates starting at offset, in insertion order
func (s *Store) ListCandidates(ctx context.Context, offset, limit int) ([]models.Candidate, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT `+candidateColumns+` FROM candidate
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidates: %w", err)
	}

	return candidates, nil
}

// DeleteCandidate removes a candidate. It returns false when no candidate
// has the id, and ErrHasVotes when any vote references the candidate.
func (s *Store) DeleteCandidate(ctx context.Context, id int64) (bool, error) {
	deleted := false

	err := s.InTx(ctx, func(tx *Store) error {
		if _, err := tx.GetCandidate(ctx, id); err != nil {
			if errors.Is(err, ErrCandidateNotFound) {
				return nil
			}
			return err
		}

		var referenced bool
		err := tx.q.QueryRowContext(ctx, `
			SELECT EXISTS(SELECT 1 FROM vote WHERE candidate_id = $1)
		`, id).Scan(&referenced)
		if err != nil {
			return fmt.Errorf("failed to check candidate votes: %w", err)
		}
		if referenced {
			return ErrHasVotes
		}

		res, err := tx.q.ExecContext(ctx, `DELETE FROM candidate WHERE id = $1`, id)
		if isForeignKeyViolation(err) {
			return ErrHasVotes
		}
		if err != nil {
			return fmt.Errorf("failed to delete candidate: %w", err)
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

// IncrementCandidateVotes adds one to the candidate's vote counter
func (s *Store) IncrementCandidateVotes(ctx context.Context, id int64) error {
	res, err := s.q.ExecContext(ctx, `
		UPDATE candidate SET votes = votes + 1 WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to increment candidate votes: %w", err)
	}

	n, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCandidateNotFound
	}
	return nil
}
