// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/party-feedback/apperrors"
	"github.com/danielhkuo/party-feedback/db"
	"github.com/danielhkuo/party-feedback/models"
)

const table = "feedback"

var ratingColumns = models.Categories

var selectColumns = append([]any{"id", "client_id"}, append(toAny(ratingColumns),
	"comment", "name", "department", "user_agent", "revision", "created_at", "updated_at")...)

// Store persists feedback records in a single SQL table
type Store struct {
	db      *sql.DB
	dialect goqu.DialectWrapper
	now     func() time.Time
}

// Open connects to the database and verifies the connection.
// SQLite gets a single connection, so writes from different clients queue
// behind each other; use it for development and tests, Postgres in production.
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	var driver string
	switch dbType {
	case db.TypePostgres:
		driver = "postgres"
	case db.TypeSQLite:
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dbType == db.TypeSQLite {
		// SQLite allows a single writer; one connection avoids SQLITE_BUSY
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(25)
		conn.SetMaxIdleConns(5)
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// New wraps an open connection. dbType selects the SQL dialect.
func New(conn *sql.DB, dbType string) (*Store, error) {
	var dialect string
	switch dbType {
	case db.TypePostgres:
		dialect = "postgres"
	case db.TypeSQLite:
		dialect = "sqlite3"
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	return &Store{
		db:      conn,
		dialect: goqu.Dialect(dialect),
		now:     time.Now,
	}, nil
}

// FindByClientID returns the record for clientID, or nil if there is none
func (s *Store) FindByClientID(ctx context.Context, clientID string) (*models.FeedbackRecord, error) {
	query, args, err := s.dialect.From(table).Prepared(true).
		Select(selectColumns...).
		Where(goqu.Ex{"client_id": clientID}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load feedback", err)
	}
	return rec, nil
}

// Upsert inserts rec, or replaces every mutable field of the existing row
// with the same client_id. created_at survives an update. On success rec's
// ID, Revision and UpdatedAt are filled in; Revision > 1 means an existing
// row was updated.
func (s *Store) Upsert(ctx context.Context, rec *models.FeedbackRecord) error {
	now := s.now().UTC()

	row := goqu.Record{
		"client_id":  rec.ClientID,
		"comment":    nullString(rec.Comment),
		"name":       nullString(rec.Name),
		"department": nullString(rec.Department),
		"user_agent": nullString(rec.UserAgent),
		"revision":   1,
		"created_at": now,
		"updated_at": now,
	}
	update := goqu.Record{
		"comment":    goqu.L("EXCLUDED.comment"),
		"name":       goqu.L("EXCLUDED.name"),
		"department": goqu.L("EXCLUDED.department"),
		"user_agent": goqu.L("EXCLUDED.user_agent"),
		"revision":   goqu.L(table + ".revision + 1"),
		"updated_at": goqu.L("EXCLUDED.updated_at"),
	}
	for _, c := range ratingColumns {
		row[c] = rec.Ratings.Get(c)
		update[c] = goqu.L("EXCLUDED." + c)
	}

	upsertSQL, upsertArgs, err := s.dialect.Insert(table).Prepared(true).
		Rows(row).
		OnConflict(goqu.DoUpdate("client_id", update)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build upsert", err)
	}

	readSQL, readArgs, err := s.dialect.From(table).Prepared(true).
		Select("id", "revision", "created_at").
		Where(goqu.Ex{"client_id": rec.ClientID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build query", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewInternalError("failed to save feedback", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, upsertSQL, upsertArgs...); err != nil {
		return apperrors.NewInternalError("failed to save feedback", err)
	}

	// The upsert holds the row lock until commit, so this read sees our write
	var id int64
	var revision int
	var createdAt time.Time
	if err := tx.QueryRowContext(ctx, readSQL, readArgs...).Scan(&id, &revision, &createdAt); err != nil {
		return apperrors.NewInternalError("failed to save feedback", err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to save feedback", err)
	}

	rec.ID = id
	rec.Revision = revision
	rec.CreatedAt = createdAt
	rec.UpdatedAt = now
	return nil
}

// ListAll returns every record, newest first
func (s *Store) ListAll(ctx context.Context) ([]models.FeedbackRecord, error) {
	query, args, err := s.dialect.From(table).Prepared(true).
		Select(selectColumns...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load feedback", err)
	}
	defer rows.Close()

	records := []models.FeedbackRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to read feedback", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read feedback", err)
	}

	return records, nil
}

// DeleteAll removes every record and returns how many were deleted
func (s *Store) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := s.dialect.Delete(table).Prepared(true).ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build delete", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, apperrors.NewInternalError("failed to delete feedback", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to count deleted feedback", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*models.FeedbackRecord, error) {
	var rec models.FeedbackRecord
	var comment, name, department, userAgent sql.NullString
	scores := make([]int, len(ratingColumns))

	dest := []any{&rec.ID, &rec.ClientID}
	for i := range scores {
		dest = append(dest, &scores[i])
	}
	dest = append(dest, &comment, &name, &department, &userAgent,
		&rec.Revision, &rec.CreatedAt, &rec.UpdatedAt)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	for i, c := range ratingColumns {
		rec.Ratings.Set(c, scores[i])
	}
	rec.Comment = stringPtr(comment)
	rec.Name = stringPtr(name)
	rec.Department = stringPtr(department)
	rec.UserAgent = stringPtr(userAgent)
	return &rec, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
