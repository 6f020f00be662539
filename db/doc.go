// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and demo seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The SQL is portable across the two supported drivers (modernc.org/sqlite and
lib/pq), so timestamps come from the application and keys are UUID strings.

# Tables

	users 1──* features (creator_id)
	users 1──* votes
	features 1──* votes

The votes table carries the composite UNIQUE (feature_id, user_id)
constraint. That constraint is the system's central invariant: at most one
vote per feature per user, enforced by the storage engine so concurrent
writers cannot race past an application-level check.

# Demo Users

SeedDemoUsers inserts alice, bob, and charlie with ON CONFLICT DO NOTHING.
User provisioning is otherwise outside this service - there is no
registration endpoint.
*/
package db
