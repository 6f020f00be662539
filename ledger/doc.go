// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger is the durable store of users, features, and votes.

# Store

Store wraps *sql.DB and exposes the five ledger operations:

	store := ledger.NewStore(dbConn)

	user, err := store.FindUserByUsername("alice")
	feature, err := store.InsertFeature("Dark mode", "", user.ID)
	views, err := store.ListFeaturesRanked(user.ID)
	vote, err := store.InsertVote(feature.ID, user.ID)
	err = store.DeleteVote(feature.ID, user.ID)

Each operation is a single statement (plus, for InsertVote, one read of a
row that is never deleted), so a constraint violation fails the whole
operation with no partial effect.

# Error Taxonomy

Expected outcomes are sentinel errors, matched with errors.Is:

  - ErrUserNotFound, ErrFeatureNotFound, ErrVoteNotFound: valid requests
    against absent rows
  - ErrDuplicateVote: the uniqueness invariant held - this is a normal
    outcome, not a fault
  - ErrEmptyTitle: rejected before any write

Everything else is a wrapped storage error and surfaces as a 500.

# The Uniqueness Invariant

At most one vote row exists per (feature_id, user_id) pair. InsertVote
relies on the UNIQUE constraint in the votes table and classifies the
driver's violation error after the fact; it never checks-then-inserts, so
the invariant holds under concurrent callers on both supported drivers.

# Ranking

ListFeaturesRanked orders by vote count, then creation time, then feature
ID, all descending. Vote counts and has-voted flags are computed in the
query from the votes relation; nothing derived is ever stored or cached.
*/
package ledger
