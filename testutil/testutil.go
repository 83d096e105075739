// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/party-feedback/cliparse"
	"github.com/danielhkuo/party-feedback/db"
	"github.com/danielhkuo/party-feedback/models"
)

// SetupTestDB creates a fresh file-backed SQLite database with the full
// schema. It is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "feedback.db")
	conn, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:test.db",
		DatabaseType: db.TypeSQLite,
		Env:          "test",
		CORSOrigins:  []string{"*"},
	}
}

// NewClientID returns a random client id, as the form would generate
func NewClientID() string {
	return uuid.NewString()
}

// ValidRatings returns a complete set of in-range ratings as the JSON
// decoder would produce them
func ValidRatings() map[string]any {
	return map[string]any{
		models.CategoryFood:                    float64(5),
		models.CategoryVenue:                   float64(4),
		models.CategoryDecor:                   float64(3),
		models.CategoryPhotobooth:              float64(5),
		models.CategoryGiveaways:               float64(2),
		models.CategoryEmcees:                  float64(4),
		models.CategoryGames:                   float64(5),
		models.CategoryDepartmentPresentations: float64(3),
		models.CategoryRaffle:                  float64(4),
		models.CategoryLoyaltyAwards:           float64(5),
	}
}

// RatingsWith returns ValidRatings with one category overridden
func RatingsWith(category string, value any) map[string]any {
	r := ValidRatings()
	r[category] = value
	return r
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
