// Copyright (c) 2025 The Featureboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidToken = errors.New("invalid session token")

// GenerateSessionToken creates a signed token binding a user ID.
// Format: <userID>.<signature> where the signature is HMAC-SHA256 of the
// user ID keyed with the salt. Deterministic and verifiable - the server
// stores nothing per session.
func GenerateSessionToken(userID, salt string) string {
	return userID + "." + sign(userID, salt)
}

// ParseSessionToken verifies the signature and returns the user ID.
func ParseSessionToken(token, salt string) (string, error) {
	// User IDs are UUIDs and never contain a dot, so the last dot
	// separates ID from signature.
	i := strings.LastIndexByte(token, '.')
	if i <= 0 || i == len(token)-1 {
		return "", ErrInvalidToken
	}

	userID := token[:i]
	expected := GenerateSessionToken(userID, salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return "", ErrInvalidToken
	}

	return userID, nil
}

func sign(userID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(userID))
	// URL-safe base64 and trimmed padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}
