// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	r.Post("/api/submit", middleware.WithLogging(h.Submit))

Logs request start at debug level and completion (status, duration_ms,
request_id) at info level through zerolog.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Service errors are mapped by type:

	middleware.AppErrorResponse(w, r, err)

INVALID_ARGUMENT becomes 400 with the offending field; anything else
becomes 500. The underlying cause is logged and never written to the
response.

Parse JSON request bodies (capped at 64KB):

	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.AppErrorResponse(w, r, apperrors.NewInvalidArgument("body", "Invalid JSON"))
		return
	}

CORS, request ids, real client IPs and panic recovery come from go-chi
and are installed in the router.
*/
package middleware
