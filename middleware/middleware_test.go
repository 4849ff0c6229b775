// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/voting-registry/models"
)

func TestWithLogging(t *testing.T) {
	handlerCalled := false
	var seenRequestID string
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		seenRequestID = RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/voters", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}

	// A request id is generated, stored in the context and echoed back
	headerID := w.Header().Get(RequestIDHeader)
	if headerID == "" {
		t.Fatal("Expected X-Request-ID response header")
	}
	if seenRequestID != headerID {
		t.Errorf("Context request id %q does not match header %q", seenRequestID, headerID)
	}
}

func TestWithLogging_KeepsIncomingRequestID(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(RequestID(r.Context())))
	})

	req := httptest.NewRequest("GET", "/votes", nil)
	req.Header.Set(RequestIDHeader, "client-supplied-id")
	w := httptest.NewRecorder()

	handler(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "client-supplied-id" {
		t.Errorf("Expected incoming request id to be echoed, got %q", got)
	}
	if w.Body.String() != "client-supplied-id" {
		t.Errorf("Expected handler to see incoming id, got %q", w.Body.String())
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"Created", http.StatusCreated, `{"id":1}`},
		{"BadRequest", http.StatusBadRequest, `{"error":"bad request"}`},
		{"NotFound", http.StatusNotFound, "not found"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/votes", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestStatusRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: w}

	rec.Write([]byte("hello"))
	rec.Write([]byte(" world"))

	if rec.status != http.StatusOK {
		t.Errorf("Expected implicit 200, got %d", rec.status)
	}
	if rec.bytes != 11 {
		t.Errorf("Expected 11 bytes recorded, got %d", rec.bytes)
	}

	rec = &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	rec.WriteHeader(http.StatusNotFound)
	if rec.status != http.StatusNotFound {
		t.Errorf("Expected 404 recorded, got %d", rec.status)
	}
}

func TestJSONResponse(t *testing.T) {
	party := "Green"
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "message",
			statusCode: http.StatusOK,
			data:       models.MessageResponse{Message: "Voter deleted successfully"},
			expected:   `{"message":"Voter deleted successfully"}`,
		},
		{
			name:       "created voter",
			statusCode: http.StatusCreated,
			data:       models.Voter{ID: 1, Name: "Alice", Email: "a@x.com"},
			expected:   `{"id":1,"name":"Alice","email":"a@x.com","has_voted":false}`,
		},
		{
			name:       "candidate without party",
			statusCode: http.StatusCreated,
			data:       models.Candidate{ID: 2, Name: "Bob"},
			expected:   `{"id":2,"name":"Bob","party":null,"votes":0}`,
		},
		{
			name:       "candidate with party",
			statusCode: http.StatusOK,
			data:       models.Candidate{ID: 3, Name: "Carol", Party: &party, Votes: 4},
			expected:   `{"id":3,"name":"Carol","party":"Green","votes":4}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Error: "Bad Request", Message: "missing field"},
			expected:   `{"error":"Bad Request","message":"missing field"}`,
		},
		{
			name:       "empty list",
			statusCode: http.StatusOK,
			data:       []models.Vote{},
			expected:   `[]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
			}

			// Trim newline added by Encode
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		message       string
		expectedError string
	}{
		{"bad request", http.StatusBadRequest, "email is required", "Bad Request"},
		{"not found", http.StatusNotFound, "Voter not found", "Not Found"},
		{"conflict", http.StatusConflict, "Voter has a recorded vote", "Conflict"},
		{"internal error", http.StatusInternalServerError, "Database error", "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}

			if resp.Error != tc.expectedError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectedError, resp.Error)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		body := `{"name":"Alice","email":"alice@example.com"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.CreateVoterRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Name != "Alice" || parsed.Email != "alice@example.com" {
			t.Errorf("Unexpected parse result %+v", parsed)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{invalid json}`))

		var parsed models.CreateVoterRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var parsed models.CreateVoterRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for empty body")
		}
	})

	t.Run("wrong field type", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"voter_id":"one","candidate_id":2}`))

		var parsed models.CastVoteRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for string voter_id")
		}
	})
}

func TestValidate(t *testing.T) {
	long := strings.Repeat("x", 256)
	party := "Independent"
	longParty := long
	vote := models.NewCastVoteRequest(1, 2)
	zeroVote := models.NewCastVoteRequest(0, -3)

	testCases := []struct {
		name        string
		input       interface{}
		expectedMsg string
	}{
		{"valid voter", &models.CreateVoterRequest{Name: "Alice", Email: "a@x.com"}, ""},
		{"missing name", &models.CreateVoterRequest{Email: "a@x.com"}, "name is required"},
		{"missing email", &models.CreateVoterRequest{Name: "Alice"}, "email is required"},
		{"bad email", &models.CreateVoterRequest{Name: "Alice", Email: "not-an-email"}, "email must be a valid email address"},
		{"long name", &models.CreateVoterRequest{Name: long, Email: "a@x.com"}, "name must be at most 255 characters"},
		{"valid candidate", &models.CreateCandidateRequest{Name: "Bob", Party: &party}, ""},
		{"candidate without party", &models.CreateCandidateRequest{Name: "Bob"}, ""},
		{"long party", &models.CreateCandidateRequest{Name: "Bob", Party: &longParty}, "party must be at most 255 characters"},
		{"valid vote", &vote, ""},
		{"zero ids pass to the store", &zeroVote, ""},
		{"missing voter_id", &models.CastVoteRequest{CandidateID: vote.CandidateID}, "voter_id is required"},
		{"missing candidate_id", &models.CastVoteRequest{VoterID: vote.VoterID}, "candidate_id is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.input)
			if tc.expectedMsg == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error %q, got nil", tc.expectedMsg)
			}
			if err.Error() != tc.expectedMsg {
				t.Errorf("Expected error %q, got %q", tc.expectedMsg, err.Error())
			}
		})
	}
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	corsHandler := CORS(nextHandler)

	t.Run("preflight OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/voters", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		// Preflight doesn't call next
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}
	})

	t.Run("regular request with origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/voters", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
			t.Error("Expected Access-Control-Allow-Origin to reflect request origin")
		}
	})

	t.Run("request without origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/voters", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})

	t.Run("allows methods and headers", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/voters", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		allowedMethods := w.Header().Get("Access-Control-Allow-Methods")
		for _, method := range []string{"GET", "POST", "DELETE", "OPTIONS"} {
			if !strings.Contains(allowedMethods, method) {
				t.Errorf("Expected %s in allowed methods", method)
			}
		}

		allowedHeaders := w.Header().Get("Access-Control-Allow-Headers")
		for _, header := range []string{"Content-Type", RequestIDHeader} {
			if !strings.Contains(allowedHeaders, header) {
				t.Errorf("Expected %s in allowed headers", header)
			}
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For single IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Forwarded-For chained IPs",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "203.0.113.195",
		},
		{
			name:       "X-Real-IP takes precedence over RemoteAddr",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "203.0.113.50",
		},
		{
			name:       "RemoteAddr with port",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.50:54321",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "RemoteAddr without port",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.50",
			expectedIP: "192.168.1.50",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if result := GetClientIP(req); result != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, result)
			}
		})
	}
}
