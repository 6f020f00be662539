// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the Featureboard API.

# Handler Types

Each handler is a struct with ledger store and config dependencies:

  - AuthHandler: username login, session token issuance
  - FeatureHandler: ranked feature list and feature submission
  - VoteHandler: vote cast and retract

Handlers are created via constructor functions that accept *ledger.Store and
Config:

	featureHandler := handlers.NewFeatureHandler(store, cfg)

Handlers own no stored state; every request maps to ledger operations and a
typed result. Ledger sentinel errors translate to HTTP statuses:

	ErrUserNotFound    → 401 (login) / 404
	ErrEmptyTitle      → 400
	ErrFeatureNotFound → 404
	ErrVoteNotFound    → 404
	ErrDuplicateVote   → 409
	anything else      → 500

# Voting Flow

	POST /login                  → Login (returns session token)
	GET  /features               → List (ranked; has_voted when authed)
	POST /features               → Create
	POST /features/{id}/vote     → Cast
	DELETE /features/{id}/vote   → Retract

Authenticated operations require the X-Session-Token header. Per feature and
user the vote state is a two-state toggle: casting while voted is a 409,
retracting while not voted is a 404, and neither changes state. Clients that
need to know the current state read it from has_voted on the list - there is
no reason to probe by writing.
*/
package handlers
