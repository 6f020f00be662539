// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"featureboard/cliparse"
	"featureboard/ledger"
	"featureboard/middleware"
	"featureboard/models"
)

type FeatureHandler struct {
	store *ledger.Store
	cfg   cliparse.Config
}

func NewFeatureHandler(store *ledger.Store, cfg cliparse.Config) *FeatureHandler {
	return &FeatureHandler{store: store, cfg: cfg}
}

// List handles GET /features
// Returns every feature ranked by vote count. Anonymous requests get the
// ranked list without has_voted; requests carrying a valid session token get
// has_voted per item, computed from the votes relation in the same query.
// A token that is present but fails verification is rejected rather than
// silently downgraded to anonymous.
func (h *FeatureHandler) List(w http.ResponseWriter, r *http.Request) {
	viewerID := ""
	p, err := middleware.PrincipalFromRequest(r, h.cfg.SessionSalt)
	switch {
	case err == nil:
		viewerID = p.UserID
	case errors.Is(err, middleware.ErrNoToken):
		// anonymous read
	default:
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session token")
		return
	}

	views, err := h.store.ListFeaturesRanked(viewerID)
	if err != nil {
		slog.Error("failed to list features", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// Create handles POST /features
// Requires a principal; rejects an empty title before any write.
func (h *FeatureHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, err := middleware.PrincipalFromRequest(r, h.cfg.SessionSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateFeatureRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// The token is self-verifying, but the user row also supplies the
	// creator username for the response.
	creator, err := h.store.FindUserByID(p.UserID)
	if errors.Is(err, ledger.ErrUserNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	feature, err := h.store.InsertFeature(req.Title, req.Description, creator.ID)
	if errors.Is(err, ledger.ErrEmptyTitle) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Title is required")
		return
	}
	if err != nil {
		slog.Error("failed to insert feature", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create feature")
		return
	}

	slog.Info("feature created", "feature_id", feature.ID, "creator", creator.Username)

	hasVoted := false
	middleware.JSONResponse(w, http.StatusCreated, models.FeatureView{
		ID:          feature.ID,
		Title:       feature.Title,
		Description: feature.Description,
		CreatedAt:   feature.CreatedAt,
		Creator:     creator.Username,
		VoteCount:   0,
		HasVoted:    &hasVoted,
	})
}
