// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared across
the Featureboard API.

# Domain Types

Three stored entities back the whole service:

  - User: identity record, provisioned out of band (or via the -seed flag)
  - Feature: a submitted request, immutable after creation
  - Vote: one ballot per (feature, user) pair, created and deleted but
    never mutated

# Derived Views

FeatureView is what the ranked read returns. Its VoteCount and HasVoted
fields are derived from the votes relation at query time. HasVoted is a
pointer so it can be omitted from JSON for unauthenticated readers.

# Principals

Principal carries the authenticated identity through the handlers. It is
always passed explicitly; nothing reads auth state from globals.
*/
package models
