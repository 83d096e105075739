// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the party feedback API.

# Route Registration

NewRouter returns a chi router with all endpoints:

	handler := router.NewRouter(st, cfg)

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Survey form:

	POST /api/check  - Look up feedback by client_id
	POST /api/submit - Create or update feedback

Admin (no authentication):

	GET  /api/report        - Statistics and all records
	GET  /api/report/export - CSV or JSON download
	POST /api/reset         - Delete all feedback

# Middleware

Applied to every route: chi RequestID, RealIP and Recoverer, then CORS
with the origins from cfg.CORSOrigins. API routes are also wrapped in
middleware.WithLogging.
*/
package router
