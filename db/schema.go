// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The SQL below is restricted to the dialect both SQLite and PostgreSQL
// accept: no NOW()/CURRENT_TIMESTAMP defaults (timestamps are inserted from
// Go), no SERIAL (surrogate keys are UUID strings).
const schema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
);

-- Features
CREATE TABLE IF NOT EXISTS features (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    creator_id TEXT NOT NULL REFERENCES users(id),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_features_creator_id ON features(creator_id);

-- Votes
CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    feature_id TEXT NOT NULL REFERENCES features(id),
    user_id TEXT NOT NULL REFERENCES users(id),
    created_at TIMESTAMP NOT NULL,
    UNIQUE (feature_id, user_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_feature_id ON votes(feature_id);
`

// SeedDemoUsers inserts the demo accounts used for local development.
// Idempotent - re-running leaves existing rows untouched.
func SeedDemoUsers(db *sql.DB) error {
	demo := []struct {
		username string
		email    string
	}{
		{"alice", "alice@example.com"},
		{"bob", "bob@example.com"},
		{"charlie", "charlie@example.com"},
	}

	for _, u := range demo {
		_, err := db.Exec(`
			INSERT INTO users (id, username, email, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (username) DO NOTHING
		`, uuid.NewString(), u.username, u.email, time.Now())
		if err != nil {
			return fmt.Errorf("failed to seed user %q: %w", u.username, err)
		}
	}

	return nil
}
