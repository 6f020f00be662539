// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by all handlers: request
logging, JSON helpers, CORS, and principal extraction.

# Principals

PrincipalFromRequest turns the X-Session-Token header into a
models.Principal:

	p, err := middleware.PrincipalFromRequest(r, cfg.SessionSalt)
	switch {
	case errors.Is(err, middleware.ErrNoToken):
		// anonymous
	case err != nil:
		// 401
	}

The two error cases are distinct on purpose: the ranked list is readable
anonymously but rejects a present-and-invalid token, while write handlers
reject both.

# JSON Helpers

JSONResponse and ErrorResponse write the standard envelope; ParseJSONBody
decodes a request body. All three are used by every handler.
*/
package middleware
