// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the party feedback API.

# Handler Types

FeedbackHandler wraps the feedback service:

	h := handlers.NewFeedbackHandler(feedback.NewService(st))

# Survey Flow

The form identifies a respondent by a client_id it generates and keeps
in browser storage. Every request carries it explicitly:

	POST /api/check   → Check  (does this client already have feedback?)
	POST /api/submit  → Submit (create, or replace the earlier answers)

Submitting twice with the same client_id edits the feedback in place;
the response's was_update tells the form which happened. The request's
User-Agent is stored with the record but never returned.

# Admin

Admin endpoints are unauthenticated:

	GET  /api/report                     → Report (stats + all records)
	GET  /api/report/export?format=csv   → Export (csv or json download)
	POST /api/reset                      → Reset  (delete everything)

# Errors

Validation failures return 400 with code INVALID_ARGUMENT and the
offending field. Store failures return 500 with code INTERNAL.
*/
package handlers
