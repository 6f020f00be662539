// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"errors"
	"testing"
	"time"

	"featureboard/testutil"
)

func TestFindUserByUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	store := NewStore(db)

	aliceID := testutil.CreateTestUser(t, db, "alice")

	user, err := store.FindUserByUsername("alice")
	if err != nil {
		t.Fatalf("Failed to find existing user: %v", err)
	}
	if user.ID != aliceID {
		t.Errorf("Expected user ID %s, got %s", aliceID, user.ID)
	}
	if user.Username != "alice" {
		t.Errorf("Expected username alice, got %s", user.Username)
	}

	if _, err := store.FindUserByUsername("nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}

	// Usernames are case-sensitive
	if _, err := store.FindUserByUsername("Alice"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound for wrong case, got %v", err)
	}
}

func TestInsertFeature(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	store := NewStore(db)

	aliceID := testutil.CreateTestUser(t, db, "alice")

	feature, err := store.InsertFeature("Dark mode", "A darker theme", aliceID)
	if err != nil {
		t.Fatalf("Failed to insert feature: %v", err)
	}
	if feature.ID == "" {
		t.Error("Expected non-empty feature ID")
	}
	if feature.CreatorID != aliceID {
		t.Errorf("Expected creator %s, got %s", aliceID, feature.CreatorID)
	}
	if feature.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}

	if n := testutil.CountRows(t, db, "features"); n != 1 {
		t.Errorf("Expected 1 feature row, got %d", n)
	}

	// Empty description is allowed
	if _, err := store.InsertFeature("Light mode", "", aliceID); err != nil {
		t.Errorf("Expected empty description to be accepted, got %v", err)
	}
}

func TestInsertFeatureEmptyTitle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	store := NewStore(db)

	aliceID := testutil.CreateTestUser(t, db, "alice")

	_, err := store.InsertFeature("", "description without a title", aliceID)
	if !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("Expected ErrEmptyTitle, got %v", err)
	}

	// Rejected before any write
	if n := testutil.CountRows(t, db, "features"); n != 0 {
		t.Errorf("Expected 0 feature rows after rejected insert, got %d", n)
	}
}

func TestInsertVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	store := NewStore(db)

	aliceID := testutil.CreateTestUser(t, db, "alice")
	bobID := testutil.CreateTestUser(t, db, "bob")
	featureID := testutil.CreateTestFeature(t, db, aliceID, "Dark mode")

	vote, err := store.InsertVote(featureID, bobID)
	if err != nil {
		t.Fatalf("Failed to insert vote: %v", err)
	}
	if vote.FeatureID != featureID || vote.UserID != bobID {
		t.Errorf("Vote row mismatch: %+v", vote)
	}

	// Second cast for the same pair must surface the uniqueness invariant
	if _, err := store.InsertVote(featureID, bobID); !errors.Is(err, ErrDuplicateVote) {
		t.Errorf("Expected ErrDuplicateVote, got %v", err)
	}
	if n := testutil.CountRows(t, db, "votes"); n != 1 {
		t.Errorf("Expected 1 vote row, got %d", n)
	}

	// A different user voting the same feature is fine
	if _, err := store.InsertVote(featureID, aliceID); err != nil {
		t.Errorf("Expected distinct pair to succeed, got %v", err)
	}
}

func TestInsertVoteFeatureNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	store := NewStore(db)

	bobID := testutil.CreateTestUser(t, db, "bob")

	_, err := store.InsertVote("no-such-feature", bobID)
	if !errors.Is(err, ErrFeatureNotFound) {
		t.Errorf("Expected ErrFeatureNotFound, got %v", err)
	}
	if n := testutil.CountRows(t, db, "votes"); n != 0 {
		t.Errorf("Expected 0 vote rows, got %d", n)
	}
}

func TestDeleteVoteNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	store := NewStore(db)

	aliceID := testutil.CreateTestUser(t, db, "alice")
	bobID := testutil.CreateTestUser(t, db, "bob")
	featureID := testutil.CreateTestFeature(t, db, aliceID, "Dark mode")
	testutil.CastTestVote(t, db, featureID, aliceID)

	// bob never voted; alice's vote must survive the failed retract
	if err := store.DeleteVote(featureID, bobID); !errors.Is(err, ErrVoteNotFound) {
		t.Errorf("Expected ErrVoteNotFound, got %v", err)
	}
	if n := testutil.CountRows(t, db, "votes"); n != 1 {
		t.Errorf("Expected vote set unchanged (1 row), got %d", n)
	}
}

// TestVoteToggle walks the two-state machine: cast, retract, cast again,
// asserting no residual rows leak across transitions.
func TestVoteToggle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	store := NewStore(db)

	aliceID := testutil.CreateTestUser(t, db, "alice")
	bobID := testutil.CreateTestUser(t, db, "bob")
	featureID := testutil.CreateTestFeature(t, db, aliceID, "Dark mode")

	if _, err := store.InsertVote(featureID, bobID); err != nil {
		t.Fatalf("First cast failed: %v", err)
	}
	if err := store.DeleteVote(featureID, bobID); err != nil {
		t.Fatalf("Retract failed: %v", err)
	}
	if n := testutil.CountRows(t, db, "votes"); n != 0 {
		t.Fatalf("Expected 0 vote rows after retract, got %d", n)
	}

	// Retracting again while NotVoted is a no-op failure
	if err := store.DeleteVote(featureID, bobID); !errors.Is(err, ErrVoteNotFound) {
		t.Errorf("Expected ErrVoteNotFound on double retract, got %v", err)
	}

	if _, err := store.InsertVote(featureID, bobID); err != nil {
		t.Fatalf("Re-cast failed: %v", err)
	}
	if n := testutil.CountRows(t, db, "votes"); n != 1 {
		t.Errorf("Expected exactly 1 vote row after re-cast, got %d", n)
	}
}

func TestListFeaturesRanked(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	store := NewStore(db)

	creatorID := testutil.CreateTestUser(t, db, "creator")
	voters := make([]string, 5)
	for i := range voters {
		voters[i] = testutil.CreateTestUser(t, db, "voter"+string(rune('a'+i)))
	}

	// Counts [5, 5, 3]; the two tied features differ by creation time
	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	older := testutil.CreateTestFeatureAt(t, db, creatorID, "Older popular", base)
	newer := testutil.CreateTestFeatureAt(t, db, creatorID, "Newer popular", base.Add(10*time.Minute))
	third := testutil.CreateTestFeatureAt(t, db, creatorID, "Third", base.Add(20*time.Minute))

	for _, v := range voters {
		testutil.CastTestVote(t, db, older, v)
		testutil.CastTestVote(t, db, newer, v)
	}
	for _, v := range voters[:3] {
		testutil.CastTestVote(t, db, third, v)
	}

	views, err := store.ListFeaturesRanked("")
	if err != nil {
		t.Fatalf("Failed to list features: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("Expected 3 features, got %d", len(views))
	}

	// Tied counts resolve newest-first
	if views[0].ID != newer || views[1].ID != older || views[2].ID != third {
		t.Errorf("Unexpected order: %s, %s, %s", views[0].Title, views[1].Title, views[2].Title)
	}
	if views[0].VoteCount != 5 || views[1].VoteCount != 5 || views[2].VoteCount != 3 {
		t.Errorf("Unexpected counts: %d, %d, %d",
			views[0].VoteCount, views[1].VoteCount, views[2].VoteCount)
	}
	if views[0].Creator != "creator" {
		t.Errorf("Expected creator username, got %s", views[0].Creator)
	}

	// Anonymous read carries no has_voted
	if views[0].HasVoted != nil {
		t.Error("Expected has_voted to be absent for anonymous read")
	}

	// A new zero-vote feature lands at the bottom without reordering the rest
	newest := testutil.CreateTestFeatureAt(t, db, creatorID, "Unvoted", base.Add(30*time.Minute))
	views, err = store.ListFeaturesRanked("")
	if err != nil {
		t.Fatalf("Failed to list features: %v", err)
	}
	if len(views) != 4 {
		t.Fatalf("Expected 4 features, got %d", len(views))
	}
	if views[0].ID != newer || views[1].ID != older || views[2].ID != third {
		t.Error("Zero-vote insert reordered existing ranked entries")
	}
	if views[3].ID != newest || views[3].VoteCount != 0 {
		t.Errorf("Expected new feature last with 0 votes, got %s with %d",
			views[3].Title, views[3].VoteCount)
	}
}

// TestListFeaturesRankedTotalOrder pins the final tie-break: equal vote
// count and equal timestamp resolve by feature ID descending, identically
// on every read.
func TestListFeaturesRankedTotalOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	store := NewStore(db)

	creatorID := testutil.CreateTestUser(t, db, "creator")
	at := time.Now().Add(-time.Hour).Truncate(time.Second)
	a := testutil.CreateTestFeatureAt(t, db, creatorID, "A", at)
	b := testutil.CreateTestFeatureAt(t, db, creatorID, "B", at)

	expectedFirst := a
	if b > a {
		expectedFirst = b
	}

	for i := 0; i < 3; i++ {
		views, err := store.ListFeaturesRanked("")
		if err != nil {
			t.Fatalf("Failed to list features: %v", err)
		}
		if len(views) != 2 {
			t.Fatalf("Expected 2 features, got %d", len(views))
		}
		if views[0].ID != expectedFirst {
			t.Fatalf("Read %d: expected %s first, got %s", i, expectedFirst, views[0].ID)
		}
	}
}

func TestListFeaturesRankedHasVoted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()
	store := NewStore(db)

	aliceID := testutil.CreateTestUser(t, db, "alice")
	bobID := testutil.CreateTestUser(t, db, "bob")
	voted := testutil.CreateTestFeature(t, db, aliceID, "Voted by bob")
	unvoted := testutil.CreateTestFeature(t, db, aliceID, "Not voted")
	testutil.CastTestVote(t, db, voted, bobID)

	views, err := store.ListFeaturesRanked(bobID)
	if err != nil {
		t.Fatalf("Failed to list features: %v", err)
	}

	flags := make(map[string]bool)
	for _, v := range views {
		if v.HasVoted == nil {
			t.Fatalf("Expected has_voted for authenticated read on %s", v.Title)
		}
		flags[v.ID] = *v.HasVoted
	}

	if !flags[voted] {
		t.Error("Expected has_voted=true for the voted feature")
	}
	if flags[unvoted] {
		t.Error("Expected has_voted=false for the unvoted feature")
	}

	// The projection is a pure read: listing must not change the vote set
	if n := testutil.CountRows(t, db, "votes"); n != 1 {
		t.Errorf("Expected vote set unchanged (1 row), got %d", n)
	}
}
