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

type VoteHandler struct {
	store *ledger.Store
	cfg   cliparse.Config
}

func NewVoteHandler(store *ledger.Store, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{store: store, cfg: cfg}
}

// Cast handles POST /features/{id}/vote
// Casting twice for the same feature yields 409; the duplicate is detected
// by the votes UNIQUE constraint, so concurrent casts for the same
// (feature, user) pair resolve to exactly one 201.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	featureID := r.PathValue("id")
	if featureID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "feature id is required")
		return
	}

	p, err := middleware.PrincipalFromRequest(r, h.cfg.SessionSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	_, err = h.store.InsertVote(featureID, p.UserID)
	if errors.Is(err, ledger.ErrFeatureNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Feature not found")
		return
	}
	if errors.Is(err, ledger.ErrDuplicateVote) {
		middleware.ErrorResponse(w, http.StatusConflict, "Already voted for this feature")
		return
	}
	if err != nil {
		slog.Error("failed to insert vote", "error", err, "feature_id", featureID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("vote cast", "feature_id", featureID, "user_id", p.UserID)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		Message: "Vote added successfully",
	})
}

// Retract handles DELETE /features/{id}/vote
// Retracting with no prior vote yields 404 and changes nothing, so the
// client-visible toggle is a clean two-state machine per (feature, user).
func (h *VoteHandler) Retract(w http.ResponseWriter, r *http.Request) {
	featureID := r.PathValue("id")
	if featureID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "feature id is required")
		return
	}

	p, err := middleware.PrincipalFromRequest(r, h.cfg.SessionSalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	err = h.store.DeleteVote(featureID, p.UserID)
	if errors.Is(err, ledger.ErrVoteNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Vote not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete vote", "error", err, "feature_id", featureID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("vote retracted", "feature_id", featureID, "user_id", p.UserID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Message: "Vote removed successfully",
	})
}
