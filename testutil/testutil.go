// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/voting-registry/cliparse"
	"github.com/danielhkuo/voting-registry/db"
)

// TestDBEnv names the variable holding a PostgreSQL URL. When it is unset
// tests run against a fresh SQLite file.
const TestDBEnv = "TEST_DATABASE_URL"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig(t)

	conn, err := db.Open(context.Background(), cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Clean up tables before each test
	if err := db.DropSchema(conn); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}
	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration. The SQLite file
// lives in the test's temp dir.
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	cfg := cliparse.Config{
		Port:             3318,
		DatabaseType:     cliparse.DatabaseSQLite,
		DefaultPageLimit: 100,
	}

	if url := os.Getenv(TestDBEnv); url != "" {
		cfg.DatabaseType = cliparse.DatabasePostgres
		cfg.DatabaseURL = url
	} else {
		cfg.DatabaseURL = filepath.Join(t.TempDir(), "voting_test.db")
	}

	return cfg
}

// CreateTestVoter inserts a voter and returns its ID
func CreateTestVoter(t *testing.T, db *sql.DB, name, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO voter (name, email, has_voted)
		VALUES ($1, $2, FALSE)
		RETURNING id
	`, name, email).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}

	return id
}

// CreateTestCandidate inserts a candidate and returns its ID. party may be empty.
func CreateTestCandidate(t *testing.T, db *sql.DB, name, party string) int64 {
	t.Helper()

	var p *string
	if party != "" {
		p = &party
	}

	var id int64
	err := db.QueryRow(`
		INSERT INTO candidate (name, party, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, name, p).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return id
}

// CastTestVote records a complete vote (row, voter flag, counter) directly in the database
func CastTestVote(t *testing.T, db *sql.DB, voterID, candidateID int64) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO vote (voter_id, candidate_id)
		VALUES ($1, $2)
		RETURNING id
	`, voterID, candidateID).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	if _, err := db.Exec(`UPDATE voter SET has_voted = TRUE WHERE id = $1`, voterID); err != nil {
		t.Fatalf("Failed to mark test voter: %v", err)
	}
	if _, err := db.Exec(`UPDATE candidate SET votes = votes + 1 WHERE id = $1`, candidateID); err != nil {
		t.Fatalf("Failed to increment test candidate: %v", err)
	}

	return id
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s rows: %v", table, err)
	}
	return n
}

// CandidateVotes returns the stored vote counter of a candidate
func CandidateVotes(t *testing.T, db *sql.DB, candidateID int64) int {
	t.Helper()

	var votes int
	if err := db.QueryRow(`SELECT votes FROM candidate WHERE id = $1`, candidateID).Scan(&votes); err != nil {
		t.Fatalf("Failed to query candidate votes: %v", err)
	}
	return votes
}

// VoterHasVoted returns the stored has_voted flag of a voter
func VoterHasVoted(t *testing.T, db *sql.DB, voterID int64) bool {
	t.Helper()

	var hasVoted bool
	if err := db.QueryRow(`SELECT has_voted FROM voter WHERE id = $1`, voterID).Scan(&hasVoted); err != nil {
		t.Fatalf("Failed to query voter: %v", err)
	}
	return hasVoted
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
