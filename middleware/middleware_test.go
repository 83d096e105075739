// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/party-feedback/apperrors"
	"github.com/danielhkuo/party-feedback/models"
)

func TestWithLogging(t *testing.T) {
	// Create a simple handler that returns OK
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	// Test that logging doesn't interfere with various response codes
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"BadRequest", http.StatusBadRequest, `{"error":"bad request"}`},
		{"NotFound", http.StatusNotFound, "not found"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/api/test", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "simple struct",
			statusCode: http.StatusOK,
			data:       map[string]string{"message": "hello"},
			expected:   `{"message":"hello"}`,
		},
		{
			name:       "check response without record",
			statusCode: http.StatusOK,
			data:       models.CheckResponse{Exists: false},
			expected:   `{"exists":false}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Error: "Bad Request", Message: "missing field"},
			expected:   `{"error":"Bad Request","message":"missing field"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
			}

			// Trim newline added by Encode
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Bad Request", resp.Error)
	assert.Equal(t, "Invalid JSON", resp.Message)
}

func TestAppErrorResponse(t *testing.T) {
	secretCause := errors.New(`pq: password authentication failed for user "party" at postgres://party:s3cret@db:5432`)

	testCases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedField  string
		expectedMsg    string
	}{
		{
			name:           "invalid argument",
			err:            apperrors.NewInvalidArgument("food", "Invalid rating for food. Must be between 1 and 5."),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_ARGUMENT",
			expectedField:  "food",
			expectedMsg:    "Invalid rating for food. Must be between 1 and 5.",
		},
		{
			name:           "internal",
			err:            apperrors.NewInternalError("failed to save feedback", secretCause),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL",
			expectedMsg:    "failed to save feedback",
		},
		{
			name:           "unclassified error",
			err:            secretCause,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL",
			expectedMsg:    "Internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/submit", nil)

			AppErrorResponse(w, req, tc.err)

			require.Equal(t, tc.expectedStatus, w.Code)
			assert.NotContains(t, w.Body.String(), "s3cret")

			var resp models.ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tc.expectedCode, resp.Code)
			assert.Equal(t, tc.expectedField, resp.Field)
			assert.Equal(t, tc.expectedMsg, resp.Message)
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		body := `{"client_id":"abc","comment":"Great party"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		w := httptest.NewRecorder()

		var parsed models.SubmitRequest
		err := ParseJSONBody(w, req, &parsed)

		require.NoError(t, err)
		assert.Equal(t, "abc", parsed.ClientID)
		assert.Equal(t, "Great party", parsed.Comment)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{invalid json}`))
		w := httptest.NewRecorder()

		var parsed models.SubmitRequest
		assert.Error(t, ParseJSONBody(w, req, &parsed))
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))
		w := httptest.NewRecorder()

		var parsed models.SubmitRequest
		assert.Error(t, ParseJSONBody(w, req, &parsed))
	})

	t.Run("oversized body", func(t *testing.T) {
		body := `{"comment":"` + strings.Repeat("x", maxBodyBytes) + `"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		w := httptest.NewRecorder()

		var parsed models.SubmitRequest
		assert.Error(t, ParseJSONBody(w, req, &parsed))
	})

	t.Run("non-string client id decodes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"client_id":42}`))
		w := httptest.NewRecorder()

		var parsed models.CheckRequest
		require.NoError(t, ParseJSONBody(w, req, &parsed))
		assert.Equal(t, float64(42), parsed.ClientID)
	})
}
