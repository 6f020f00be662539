// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"featureboard/models"
)

// Sentinel errors returned by store operations. Callers branch on these
// with errors.Is; anything else is a storage fault.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrFeatureNotFound = errors.New("feature not found")
	ErrVoteNotFound    = errors.New("vote not found")
	ErrDuplicateVote   = errors.New("vote already exists for this feature and user")
	ErrEmptyTitle      = errors.New("title must not be empty")
)

// Store is the single writer for users, features, and votes. It holds no
// state of its own beyond the database handle, which is safe for concurrent
// use.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// FindUserByUsername looks up a user by exact (case-sensitive) username.
func (s *Store) FindUserByUsername(username string) (models.User, error) {
	var u models.User
	err := s.db.QueryRow(`
		SELECT id, username, email, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user by username: %w", err)
	}

	return u, nil
}

// FindUserByID looks up a user by surrogate key.
func (s *Store) FindUserByID(id string) (models.User, error) {
	var u models.User
	err := s.db.QueryRow(`
		SELECT id, username, email, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user by id: %w", err)
	}

	return u, nil
}

// InsertFeature creates a feature owned by creatorID. The title must be
// non-empty; the description may be empty. Features are immutable once
// inserted - there is no update or delete.
func (s *Store) InsertFeature(title, description, creatorID string) (models.Feature, error) {
	if title == "" {
		return models.Feature{}, ErrEmptyTitle
	}

	f := models.Feature{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatorID:   creatorID,
		CreatedAt:   time.Now(),
	}

	_, err := s.db.Exec(`
		INSERT INTO features (id, title, description, creator_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, f.ID, f.Title, f.Description, f.CreatorID, f.CreatedAt)
	if err != nil {
		return models.Feature{}, fmt.Errorf("failed to insert feature: %w", err)
	}

	return f, nil
}

// ListFeaturesRanked returns every feature with its derived vote count,
// ordered by vote count descending, then creation time descending, then
// feature ID descending. The final key makes the order total, so repeated
// reads never flicker between permutations of tied rows.
//
// When viewerID is non-empty, each view carries whether that user has voted
// for the feature, computed from the votes relation in the same query.
func (s *Store) ListFeaturesRanked(viewerID string) ([]models.FeatureView, error) {
	rows, err := s.db.Query(`
		SELECT
			f.id,
			f.title,
			f.description,
			f.created_at,
			u.username AS creator,
			COUNT(v.id) AS vote_count,
			CASE WHEN EXISTS (
				SELECT 1 FROM votes mv
				WHERE mv.feature_id = f.id AND mv.user_id = $1
			) THEN 1 ELSE 0 END AS has_voted
		FROM features f
		JOIN users u ON f.creator_id = u.id
		LEFT JOIN votes v ON v.feature_id = f.id
		GROUP BY f.id, f.title, f.description, f.created_at, u.username
		ORDER BY vote_count DESC, f.created_at DESC, f.id DESC
	`, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranked features: %w", err)
	}
	defer rows.Close()

	views := []models.FeatureView{}
	for rows.Next() {
		var view models.FeatureView
		var hasVoted int
		if err := rows.Scan(
			&view.ID, &view.Title, &view.Description, &view.CreatedAt,
			&view.Creator, &view.VoteCount, &hasVoted,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ranked feature: %w", err)
		}
		if viewerID != "" {
			hv := hasVoted == 1
			view.HasVoted = &hv
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ranked features: %w", err)
	}

	return views, nil
}

// InsertVote casts a vote for featureID on behalf of userID. Duplicates are
// detected from the storage engine's UNIQUE violation after the insert, not
// from a prior existence check, so two concurrent casts for the same pair
// resolve to exactly one success and one ErrDuplicateVote.
//
// The feature-existence check below cannot race with the insert because
// features are never deleted.
func (s *Store) InsertVote(featureID, userID string) (models.Vote, error) {
	var id string
	err := s.db.QueryRow(`SELECT id FROM features WHERE id = $1`, featureID).Scan(&id)
	if err == sql.ErrNoRows {
		return models.Vote{}, ErrFeatureNotFound
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to query feature: %w", err)
	}

	v := models.Vote{
		ID:        uuid.NewString(),
		FeatureID: featureID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	_, err = s.db.Exec(`
		INSERT INTO votes (id, feature_id, user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, v.ID, v.FeatureID, v.UserID, v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Vote{}, ErrDuplicateVote
		}
		return models.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	return v, nil
}

// DeleteVote retracts the vote for (featureID, userID). Removing a vote that
// does not exist reports ErrVoteNotFound and changes nothing.
func (s *Store) DeleteVote(featureID, userID string) error {
	res, err := s.db.Exec(`
		DELETE FROM votes WHERE feature_id = $1 AND user_id = $2
	`, featureID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return ErrVoteNotFound
	}

	return nil
}

// isUniqueViolation reports whether err is a uniqueness-constraint failure.
// modernc.org/sqlite and lib/pq spell the violation differently.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
