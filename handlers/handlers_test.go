package handlers

import (
	"database/sql"
	"testing"

	"github.com/danielhkuo/voting-registry/store"
	"github.com/danielhkuo/voting-registry/testutil"
)

type testHandlers struct {
	db         *sql.DB
	voters     *VoterHandler
	candidates *CandidateHandler
	votes      *VoteHandler
}

func setupHandlers(t *testing.T) testHandlers {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)
	s := store.New(db)

	return testHandlers{
		db:         db,
		voters:     NewVoterHandler(s, cfg),
		candidates: NewCandidateHandler(s, cfg),
		votes:      NewVoteHandler(s, cfg),
	}
}
