// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON, carrying validator tags:

  - CreateVoterRequest: name, email (must be a valid address)
  - CreateCandidateRequest: name, optional party
  - CastVoteRequest: voter_id, candidate_id

# Domain Types

Records persisted by the store package:

  - Voter: id, name, email, has_voted
  - Candidate: id, name, party (null when absent), votes
  - Vote: id, voter_id, candidate_id

# Statistics

  - CandidateStats: candidate_id, candidate_name, total_votes, percentage
  - VotingStats: candidates_stats, total_votes, total_voters_who_voted

Percentages are rounded to two decimal places and are 0 when no vote
has been cast.

# Generic Responses

  - MessageResponse: message (returned by deletes)
  - RootResponse: message, version
  - ErrorResponse: error, message
*/
package models
