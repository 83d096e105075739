// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package feedback implements the feedback data service: lookup, submit,
report and reset over a single store keyed by client id.

# Operations

	svc := feedback.NewService(st)

	rec, err := svc.Lookup(ctx, clientID)    // nil, nil when not found
	res, err := svc.Submit(ctx, submission)  // res.WasUpdate on resubmission
	rep, err := svc.Report(ctx)              // stats + records, newest first
	n, err := svc.Reset(ctx)                 // deletes everything

# Validation

Submit checks, in order:

 1. client_id is a non-empty string
 2. ratings is present and has exactly the ten categories, each a whole
    number from 1 to 5

The first failure is returned as an apperrors.AppError of type
INVALID_ARGUMENT whose Field names the offending input. Store failures
come back as INTERNAL. The service never retries.

# Upsert

A submit is a single INSERT ... ON CONFLICT (client_id) DO UPDATE. The
store bumps a revision counter on conflict, and WasUpdate is derived
from it, so there is no read-then-write window between two submissions
for the same client.

# Reports and exports

BuildReport computes the statistics and applies the "Anonymous" and
"Not Specified" placeholders. WriteCSV and WriteJSON render a report for
download.
*/
package feedback
