// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes the feedback table for the configured database:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.
Both "postgres" and "sqlite" are supported; the two schemas differ only
in column types and the surrogate key definition.

# Tables

	feedback: one row per client_id

client_id carries a UNIQUE constraint, which is the conflict target for
the submit upsert. Every rating column has a CHECK (BETWEEN 1 AND 5), so a
row that slipped past validation is still rejected by the store.

revision starts at 1 and is incremented by every re-submission. It is
how a submit tells an insert from an update without a separate read.

# Indexes

  - feedback.client_id (unique)
  - feedback.created_at (report ordering)
*/
package db
