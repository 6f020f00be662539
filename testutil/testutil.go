// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"featureboard/cliparse"
	"featureboard/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbConn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single connection keeps every statement on the same in-memory
	// database; additional pool connections would each see an empty one.
	dbConn.SetMaxOpenConns(1)

	if err := db.CreateSchema(dbConn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return dbConn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  ":memory:",
		SessionSalt:  "test-session-salt",
	}
}

// CreateTestUser inserts a user and returns its ID
func CreateTestUser(t *testing.T, dbConn *sql.DB, username string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := dbConn.Exec(`
		INSERT INTO users (id, username, email, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, username, username+"@example.com", time.Now())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// CreateTestFeature inserts a feature and returns its ID
func CreateTestFeature(t *testing.T, dbConn *sql.DB, creatorID, title string) string {
	t.Helper()
	return CreateTestFeatureAt(t, dbConn, creatorID, title, time.Now())
}

// CreateTestFeatureAt inserts a feature with an explicit creation time,
// for tests that pin the ranking tie-break order
func CreateTestFeatureAt(t *testing.T, dbConn *sql.DB, creatorID, title string, createdAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := dbConn.Exec(`
		INSERT INTO features (id, title, description, creator_id, created_at)
		VALUES ($1, $2, '', $3, $4)
	`, id, title, creatorID, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test feature: %v", err)
	}

	return id
}

// CastTestVote inserts a vote row directly
func CastTestVote(t *testing.T, dbConn *sql.DB, featureID, userID string) {
	t.Helper()

	_, err := dbConn.Exec(`
		INSERT INTO votes (id, feature_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), featureID, userID, time.Now())
	if err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, dbConn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := dbConn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return n
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
