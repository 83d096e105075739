// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feedback

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/party-feedback/metrics"
	"github.com/danielhkuo/party-feedback/models"
)

// Store is the persistence the service needs. *store.Store implements it.
type Store interface {
	FindByClientID(ctx context.Context, clientID string) (*models.FeedbackRecord, error)
	Upsert(ctx context.Context, rec *models.FeedbackRecord) error
	ListAll(ctx context.Context) ([]models.FeedbackRecord, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// Submission is one submit call. ClientID and Ratings are untyped so the
// service can reject wrong JSON types itself.
type Submission struct {
	ClientID   any
	Ratings    any
	Comment    string
	Name       string
	Department string
	UserAgent  string
}

// SubmitResult reports what a submit did
type SubmitResult struct {
	RecordID  int64
	WasUpdate bool
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Lookup returns the record for clientID. A missing record is (nil, nil).
func (s *Service) Lookup(ctx context.Context, clientID any) (*models.FeedbackRecord, error) {
	id, err := ParseClientID(clientID)
	if err != nil {
		return nil, err
	}

	defer observe("lookup", time.Now())
	return s.store.FindByClientID(ctx, id)
}

// Submit validates sub and upserts it keyed by client id. Resubmitting
// replaces every rating and optional field of the earlier submission.
func (s *Service) Submit(ctx context.Context, sub Submission) (SubmitResult, error) {
	clientID, err := ParseClientID(sub.ClientID)
	if err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return SubmitResult{}, err
	}

	ratings, err := ParseRatings(sub.Ratings)
	if err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return SubmitResult{}, err
	}

	rec := &models.FeedbackRecord{
		ClientID:   clientID,
		Ratings:    ratings,
		Comment:    optionalText(sub.Comment),
		Name:       optionalText(sub.Name),
		Department: optionalText(sub.Department),
	}
	if sub.UserAgent != "" {
		ua := sub.UserAgent
		rec.UserAgent = &ua
	}

	start := time.Now()
	err = s.store.Upsert(ctx, rec)
	observe("upsert", start)
	if err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeError).Inc()
		return SubmitResult{}, err
	}

	result := SubmitResult{RecordID: rec.ID, WasUpdate: rec.Revision > 1}
	if result.WasUpdate {
		metrics.Submissions.WithLabelValues(metrics.OutcomeUpdated).Inc()
	} else {
		metrics.Submissions.WithLabelValues(metrics.OutcomeCreated).Inc()
	}

	log.Info().
		Int64("record_id", rec.ID).
		Bool("was_update", result.WasUpdate).
		Int("revision", rec.Revision).
		Msg("feedback saved")

	return result, nil
}

// Report loads every record and summarizes it
func (s *Service) Report(ctx context.Context) (models.ReportResponse, error) {
	start := time.Now()
	records, err := s.store.ListAll(ctx)
	observe("list", start)
	if err != nil {
		return models.ReportResponse{}, err
	}

	metrics.StoredRecords.Set(float64(len(records)))
	return BuildReport(records), nil
}

// Reset deletes every record. There is no undo.
func (s *Service) Reset(ctx context.Context) (int64, error) {
	start := time.Now()
	n, err := s.store.DeleteAll(ctx)
	observe("delete_all", start)
	if err != nil {
		return 0, err
	}

	metrics.Resets.Inc()
	metrics.StoredRecords.Set(0)
	log.Warn().Int64("deleted_count", n).Msg("all feedback deleted")
	return n, nil
}

func observe(op string, start time.Time) {
	metrics.StoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
