// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CheckRequest: client_id
  - SubmitRequest: client_id, ratings, comment, name, department

client_id and the rating values are decoded as untyped JSON so that a
wrong type can be reported as a validation error naming the field.

# Response Types

Types for JSON responses:

  - CheckResponse: exists, record
  - SubmitResponse: success, was_update, record_id, message
  - ReportResponse: stats, records
  - ResetResponse: success, deleted_count, message
  - ErrorResponse: error, code, field, message

# Domain Types

  - Ratings: one 1-5 score per category
  - FeedbackRecord: a stored submission, keyed by client_id
  - ReportStats: totals, per-category averages, distinct departments
  - ReportRecord: a record with report placeholders applied

# Constants

Rating categories, in form order:

	food, venue, decor, photobooth, giveaways, emcees, games,
	department_presentations, raffle, loyalty_awards

Placeholders used only in reports:

	AnonymousName         = "Anonymous"
	UnspecifiedDepartment = "Not Specified"
*/
package models
