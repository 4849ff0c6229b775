// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/danielhkuo/voting-registry/models"
)

// statsTxOptions gives every read in Statistics the same snapshot.
// READ COMMITTED would let a vote committed between two statements show up
// in one count but not the other.
var statsTxOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// Statistics computes per-candidate vote counts and percentages and the
// number of voters who voted, all from one repeatable-read snapshot. The
// total is the sum of the per-candidate counts, so percentages always add
// up to 100 (give or take rounding) when any vote exists.
func (s *Store) Statistics(ctx context.Context) (models.VotingStats, error) {
	stats := models.VotingStats{CandidatesStats: []models.CandidateStats{}}

	err := s.InTxOptions(ctx, statsTxOptions, func(tx *Store) error {
		rows, err := tx.q.QueryContext(ctx, `
			SELECT c.id, c.name, COUNT(v.id)
			FROM candidate c
			LEFT JOIN vote v ON v.candidate_id = c.id
			GROUP BY c.id, c.name
			ORDER BY c.id
		`)
		if err != nil {
			return fmt.Errorf("failed to query candidate tallies: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var cs models.CandidateStats
			if err := rows.Scan(&cs.CandidateID, &cs.CandidateName, &cs.TotalVotes); err != nil {
				return fmt.Errorf("failed to scan candidate tally: %w", err)
			}
			stats.TotalVotes += cs.TotalVotes
			stats.CandidatesStats = append(stats.CandidatesStats, cs)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate candidate tallies: %w", err)
		}

		stats.TotalVotersWhoVoted, err = tx.CountVotersWhoVoted(ctx)
		return err
	})
	if err != nil {
		return models.VotingStats{}, err
	}

	for i := range stats.CandidatesStats {
		cs := &stats.CandidatesStats[i]
		cs.Percentage = Percentage(cs.TotalVotes, stats.TotalVotes)
	}

	return stats, nil
}

// Percentage returns votes/total*100 rounded to two decimals, or 0 when
// total is 0. Rounding works on the exact binary value with ties to even,
// so 1 of 800 votes (0.125%) reports 0.12.
func Percentage(votes, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := float64(votes) / float64(total) * 100
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(p, 'f', 2, 64), 64)
	if err != nil {
		return p
	}
	return rounded
}
