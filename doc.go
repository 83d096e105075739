// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the party feedback API server.

The server backs a one-page Christmas-party survey: each respondent rates
ten categories from 1 to 5 and may leave a comment, a name and a
department. Respondents are identified by a client_id the form generates,
so resubmitting edits the earlier answers instead of adding a new row.

# Starting the Server

The server reads CLI flags, environment variables, or a .env file:

	DATABASE_URL=file:feedback.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - APP_ENV (-env): production (default), development or test
  - CORS_ORIGINS (-cors-origins): allowed origins (default: *)

# Architecture

  - feedback: the data service (lookup, submit, report, reset, export)
  - store: SQL persistence built with goqu
  - handlers: HTTP request handlers
  - router: chi routes and middleware
  - middleware: request logging, JSON helpers, error mapping
  - models: request/response and domain types
  - apperrors: INVALID_ARGUMENT / INTERNAL classification
  - metrics: Prometheus collectors
  - logging: zerolog setup
  - db: schema creation
  - cliparse: configuration parsing

cmd/resetdb deletes all feedback from the command line.
*/
package main
