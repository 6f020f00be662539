// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Featureboard API server.

Featureboard is a feature-request voting service: registered users submit
feature requests, cast at most one vote per feature, and read a ranked list
ordered by vote count.

# Starting the Server

The server reads configuration from environment variables (optionally via a
.env file) or CLI flags:

	SESSION_SALT=... go run . -seed

Or with flags:

	go run . -p 3000 -t sqlite -d voting_system.db -session-salt dev-salt

# Configuration

Required settings:

  - SESSION_SALT (-session-salt): Secret for session token HMAC

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): Connection string (default: voting_system.db)
  - -seed: Insert demo users alice, bob, charlie

# Architecture

The server uses a handler-based architecture with dependency injection:

  - ledger: The durable store of users, features, and votes, with the
    vote-uniqueness invariant enforced by the database
  - handlers: HTTP request handlers (login, features, votes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, principal extraction
  - models: Request/response and domain types
  - auth: Stateless HMAC session tokens
  - db: Schema creation and demo seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
