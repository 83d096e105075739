// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var schema string
	switch dbType {
	case TypePostgres:
		schema = postgresSchema
	case TypeSQLite:
		schema = sqliteSchema
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS feedback (
    id BIGSERIAL PRIMARY KEY,
    client_id TEXT NOT NULL UNIQUE,
    food SMALLINT NOT NULL CHECK (food BETWEEN 1 AND 5),
    venue SMALLINT NOT NULL CHECK (venue BETWEEN 1 AND 5),
    decor SMALLINT NOT NULL CHECK (decor BETWEEN 1 AND 5),
    photobooth SMALLINT NOT NULL CHECK (photobooth BETWEEN 1 AND 5),
    giveaways SMALLINT NOT NULL CHECK (giveaways BETWEEN 1 AND 5),
    emcees SMALLINT NOT NULL CHECK (emcees BETWEEN 1 AND 5),
    games SMALLINT NOT NULL CHECK (games BETWEEN 1 AND 5),
    department_presentations SMALLINT NOT NULL CHECK (department_presentations BETWEEN 1 AND 5),
    raffle SMALLINT NOT NULL CHECK (raffle BETWEEN 1 AND 5),
    loyalty_awards SMALLINT NOT NULL CHECK (loyalty_awards BETWEEN 1 AND 5),
    comment TEXT,
    name TEXT,
    department TEXT,
    user_agent TEXT,
    revision INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CHECK (created_at <= updated_at)
);

CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback(created_at);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS feedback (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    client_id TEXT NOT NULL UNIQUE,
    food INTEGER NOT NULL CHECK (food BETWEEN 1 AND 5),
    venue INTEGER NOT NULL CHECK (venue BETWEEN 1 AND 5),
    decor INTEGER NOT NULL CHECK (decor BETWEEN 1 AND 5),
    photobooth INTEGER NOT NULL CHECK (photobooth BETWEEN 1 AND 5),
    giveaways INTEGER NOT NULL CHECK (giveaways BETWEEN 1 AND 5),
    emcees INTEGER NOT NULL CHECK (emcees BETWEEN 1 AND 5),
    games INTEGER NOT NULL CHECK (games BETWEEN 1 AND 5),
    department_presentations INTEGER NOT NULL CHECK (department_presentations BETWEEN 1 AND 5),
    raffle INTEGER NOT NULL CHECK (raffle BETWEEN 1 AND 5),
    loyalty_awards INTEGER NOT NULL CHECK (loyalty_awards BETWEEN 1 AND 5),
    comment TEXT,
    name TEXT,
    department TEXT,
    user_agent TEXT,
    revision INTEGER NOT NULL DEFAULT 1,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback(created_at);
`
