// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements stateless session tokens.

# Token Format

A token is the user ID joined to an HMAC-SHA256 signature:

	<userID>.<base64url(HMAC-SHA256(userID, salt))>

The salt is the server's only secret (SESSION_SALT). Because the token is
self-verifying, no session rows are stored; the durable state of the system
is exactly the users, features, and votes relations.

# Usage

	token := auth.GenerateSessionToken(user.ID, cfg.SessionSalt)

	userID, err := auth.ParseSessionToken(token, cfg.SessionSalt)
	if err != nil {
		// 401
	}

Tokens do not expire. Rotating SESSION_SALT invalidates every outstanding
token at once.
*/
package auth
