package models

import "time"

// Request types

type LoginRequest struct {
	Username string `json:"username"`
}

type CreateFeatureRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Response types

type LoginResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type VoteResponse struct {
	Message string `json:"message"`
}

// Domain types

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
}

type Feature struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type Vote struct {
	ID        string    `json:"id"`
	FeatureID string    `json:"feature_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Principal is the authenticated identity attached to a request after a
// successful login. Handlers that require auth take it explicitly; there is
// no ambient session state.
type Principal struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// FeatureView is the ranked-read projection of a feature: the stored columns
// plus the derived vote count and, for authenticated readers, whether the
// caller has voted for it. Both derived values are computed at query time
// from the votes relation, never cached.
type FeatureView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Creator     string    `json:"creator"`
	VoteCount   int       `json:"vote_count"`
	HasVoted    *bool     `json:"has_voted,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
