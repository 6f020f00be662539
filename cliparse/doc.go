// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from CLI flags with environment
variable fallback.

Settings:

  - PORT (-p): server port, default 3000
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string; defaults to voting_system.db for
    SQLite, required for postgres
  - SESSION_SALT (-session-salt): secret for session token HMAC, required
  - -seed: insert the demo users on startup

main loads a .env file (via godotenv) before calling ParseFlags, so local
development can keep SESSION_SALT out of the shell history.
*/
package cliparse
