// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"featureboard/auth"
	"featureboard/cliparse"
	"featureboard/ledger"
	"featureboard/middleware"
	"featureboard/models"
)

type AuthHandler struct {
	store *ledger.Store
	cfg   cliparse.Config
}

func NewAuthHandler(store *ledger.Store, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{store: store, cfg: cfg}
}

// Login handles POST /login
// Looks up an existing user by username and issues a session token. Does NOT
// create accounts - an unknown username is a 401, reported as "User not
// found" so clients can message it accurately.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username is required")
		return
	}

	user, err := h.store.FindUserByUsername(req.Username)
	if errors.Is(err, ledger.ErrUserNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	token := auth.GenerateSessionToken(user.ID, h.cfg.SessionSalt)

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
	})
}
