// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method+pattern
routing.

NewRouter wires the ledger store into the handlers and registers:

	POST   /login
	GET    /features
	POST   /features
	POST   /features/{id}/vote
	DELETE /features/{id}/vote
	GET    /health
	GET    /

All API routes are wrapped with request logging. CORS is applied around the
whole mux in main, since preflight OPTIONS requests must be answered before
method matching.
*/
package router
