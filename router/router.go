// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"featureboard/cliparse"
	"featureboard/handlers"
	"featureboard/ledger"
	"featureboard/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	store := ledger.NewStore(db)
	authHandler := handlers.NewAuthHandler(store, cfg)
	featureHandler := handlers.NewFeatureHandler(store, cfg)
	voteHandler := handlers.NewVoteHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))

	// Features (list is public, create requires auth)
	mux.HandleFunc("GET /features", middleware.WithLogging(featureHandler.List))
	mux.HandleFunc("POST /features", middleware.WithLogging(featureHandler.Create))

	// Votes (auth required)
	mux.HandleFunc("POST /features/{id}/vote", middleware.WithLogging(voteHandler.Cast))
	mux.HandleFunc("DELETE /features/{id}/vote", middleware.WithLogging(voteHandler.Retract))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("featureboard API v1"))
	})

	return mux
}
