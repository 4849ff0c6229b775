// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the voting registry API.

# Handler Types

Each handler is a struct holding the shared store and config:

  - VoterHandler: voter registration, lookup, listing and deletion
  - CandidateHandler: candidate registration, lookup, listing and deletion
  - VoteHandler: casting votes, vote lookup and statistics

Handlers are created via constructor functions:

	s := store.New(db)
	voteHandler := handlers.NewVoteHandler(s, cfg)

# Casting a Vote

	POST /votes → CastVote

The vote row, the voter's has_voted flag and the candidate's counter are
written in one transaction by store.CastVote. A voter votes at most once;
a second attempt answers 400 and leaves all three untouched.

# Status Codes

	400  malformed JSON, failed validation, duplicate email, second vote,
	     non-integer path id or pagination parameter
	404  unknown voter, candidate or vote
	409  deleting a voter or candidate that has a recorded vote
	500  unexpected database failure (logged with the request id)

# Pagination

List endpoints accept skip and limit query parameters. Missing values
default to 0 and Config.DefaultPageLimit.
*/
package handlers
