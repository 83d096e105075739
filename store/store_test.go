// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/party-feedback/apperrors"
	"github.com/danielhkuo/party-feedback/models"
	"github.com/danielhkuo/party-feedback/testutil"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(testutil.SetupTestDB(t), "sqlite")
	require.NoError(t, err)
	return s
}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	s, err := New(conn, "postgres")
	require.NoError(t, err)
	return s, mock
}

func testRecord(clientID string, score int) *models.FeedbackRecord {
	rec := &models.FeedbackRecord{ClientID: clientID}
	for _, c := range models.Categories {
		rec.Ratings.Set(c, score)
	}
	return rec
}

func TestNewRejectsUnknownType(t *testing.T) {
	_, err := New(nil, "mysql")
	assert.Error(t, err)
}

func TestOpenRejectsUnknownType(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "whatever")
	assert.Error(t, err)
}

func TestUpsertInsertThenUpdate(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	t0 := time.Date(2025, 12, 20, 18, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return t0 }

	comment := "first"
	rec := testRecord("client-1", 3)
	rec.Comment = &comment
	require.NoError(t, s.Upsert(ctx, rec))

	assert.NotZero(t, rec.ID)
	assert.Equal(t, 1, rec.Revision)
	assert.True(t, rec.CreatedAt.Equal(t0))
	firstID := rec.ID

	t1 := t0.Add(30 * time.Minute)
	s.now = func() time.Time { return t1 }

	update := testRecord("client-1", 5)
	require.NoError(t, s.Upsert(ctx, update))

	assert.Equal(t, firstID, update.ID)
	assert.Equal(t, 2, update.Revision)
	assert.True(t, update.CreatedAt.Equal(t0), "created_at must survive an update")
	assert.True(t, update.UpdatedAt.Equal(t1))

	got, err := s.FindByClientID(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 5, got.Ratings.Food)
	assert.Equal(t, 5, got.Ratings.LoyaltyAwards)
	assert.Nil(t, got.Comment, "update replaces the comment with NULL")
	assert.True(t, got.CreatedAt.Equal(t0))
	assert.True(t, got.UpdatedAt.Equal(t1))
}

func TestFindByClientIDMissing(t *testing.T) {
	s := newSQLiteStore(t)

	got, err := s.FindByClientID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListAllNewestFirst(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	base := time.Date(2025, 12, 20, 18, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		ts := base.Add(time.Duration(i) * time.Minute)
		s.now = func() time.Time { return ts }
		require.NoError(t, s.Upsert(ctx, testRecord(id, i+1)))
	}

	records, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "c", records[0].ClientID)
	assert.Equal(t, "b", records[1].ClientID)
	assert.Equal(t, "a", records[2].ClientID)
}

func TestListAllEmpty(t *testing.T) {
	s := newSQLiteStore(t)

	records, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestDeleteAll(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		require.NoError(t, s.Upsert(ctx, testRecord(id, 4)))
	}

	n, err := s.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	records, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUpsertBeginFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := s.Upsert(context.Background(), testRecord("client-1", 3))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertExecFailureRollsBack(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "feedback"`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.Upsert(context.Background(), testRecord("client-1", 3))
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.Equal(t, "failed to save feedback", appErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertPostgresReadsBackRevision(t *testing.T) {
	s, mock := newMockStore(t)
	created := time.Date(2025, 12, 20, 18, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "feedback" .* ON CONFLICT \(client_id\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT "id", "revision", "created_at" FROM "feedback"`).
		WithArgs("client-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "revision", "created_at"}).AddRow(int64(9), 3, created))
	mock.ExpectCommit()

	rec := testRecord("client-1", 3)
	require.NoError(t, s.Upsert(context.Background(), rec))

	assert.Equal(t, int64(9), rec.ID)
	assert.Equal(t, 3, rec.Revision)
	assert.Equal(t, created, rec.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllQueryFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .* FROM "feedback"`).
		WillReturnError(errors.New("pq: password authentication failed for user \"admin\""))

	_, err := s.ListAll(context.Background())

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.NotContains(t, appErr.Message, "password")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAllFailure(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM "feedback"`).WillReturnError(errors.New("timeout"))

	_, err := s.DeleteAll(context.Background())
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
