package models

// Request types

type CreateVoterRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

type CreateCandidateRequest struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Party *string `json:"party" validate:"omitempty,max=255"`
}

// CastVoteRequest ids are pointers so an absent field can be told apart
// from an id that simply does not exist
type CastVoteRequest struct {
	VoterID     *int64 `json:"voter_id" validate:"required"`
	CandidateID *int64 `json:"candidate_id" validate:"required"`
}

func NewCastVoteRequest(voterID, candidateID int64) CastVoteRequest {
	return CastVoteRequest{VoterID: &voterID, CandidateID: &candidateID}
}

// Domain types

type Voter struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	HasVoted bool   `json:"has_voted"`
}

type Candidate struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Party *string `json:"party"`
	Votes int     `json:"votes"`
}

type Vote struct {
	ID          int64 `json:"id"`
	VoterID     int64 `json:"voter_id"`
	CandidateID int64 `json:"candidate_id"`
}

// Statistics types

type CandidateStats struct {
	CandidateID   int64   `json:"candidate_id"`
	CandidateName string  `json:"candidate_name"`
	TotalVotes    int     `json:"total_votes"`
	Percentage    float64 `json:"percentage"`
}

type VotingStats struct {
	CandidatesStats     []CandidateStats `json:"candidates_stats"`
	TotalVotes          int              `json:"total_votes"`
	TotalVotersWhoVoted int              `json:"total_voters_who_voted"`
}

// Generic responses

type MessageResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
