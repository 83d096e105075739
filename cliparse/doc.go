// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - Env: "production" (default), "development" or "test"
  - CORSOrigins: allowed origins (default: "*")

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-env            Environment
	-cors-origins   Comma-separated allowed origins

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	APP_ENV       → -env
	CORS_ORIGINS  → -cors-origins

CLI flags take precedence over environment variables. main loads a .env
file first, so values there behave like environment variables.

# Validation

The parsed Config is checked with go-playground/validator: the port must
be in range, the database type and environment must be known values, and
DATABASE_URL must be set.

# Secrets

Never log DatabaseURL directly; use RedactedDatabaseURL.
*/
package cliparse
