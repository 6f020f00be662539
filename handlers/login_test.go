package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"featureboard/auth"
	"featureboard/ledger"
	"featureboard/models"
)

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cfg := getTestConfig()
	handler := NewAuthHandler(ledger.NewStore(db), cfg)

	aliceID := insertUser(t, db, "alice")

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.LoginResponse)
	}{
		{
			name:           "valid login",
			requestBody:    models.LoginRequest{Username: "alice"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.LoginResponse) {
				if resp.UserID != aliceID {
					t.Errorf("Expected user_id %s, got %s", aliceID, resp.UserID)
				}
				if resp.Username != "alice" {
					t.Errorf("Expected username alice, got %s", resp.Username)
				}

				// The issued token must verify and bind alice's ID
				userID, err := auth.ParseSessionToken(resp.Token, cfg.SessionSalt)
				if err != nil {
					t.Fatalf("Issued token failed verification: %v", err)
				}
				if userID != aliceID {
					t.Errorf("Token bound to %s, expected %s", userID, aliceID)
				}
			},
		},
		{
			name:           "unknown user",
			requestBody:    models.LoginRequest{Username: "mallory"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong case username",
			requestBody:    models.LoginRequest{Username: "Alice"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing username",
			requestBody:    models.LoginRequest{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(tt.requestBody)
			if err != nil {
				t.Fatalf("Failed to marshal request body: %v", err)
			}

			req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Login(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusOK && tt.checkResponse != nil {
				var resp models.LoginResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestLoginInvalidJSON(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	handler := NewAuthHandler(ledger.NewStore(db), getTestConfig())

	req := httptest.NewRequest("POST", "/login", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Login(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestLoginDoesNotCreateAccounts(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	handler := NewAuthHandler(ledger.NewStore(db), getTestConfig())

	body, _ := json.Marshal(models.LoginRequest{Username: "newcomer"})
	req := httptest.NewRequest("POST", "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Login(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status 401, got %d", w.Code)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected login to create no accounts, found %d users", count)
	}
}
