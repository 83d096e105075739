// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/party-feedback/apperrors"
	"github.com/danielhkuo/party-feedback/feedback"
	"github.com/danielhkuo/party-feedback/middleware"
	"github.com/danielhkuo/party-feedback/models"
)

type FeedbackHandler struct {
	svc *feedback.Service
	now func() time.Time
}

func NewFeedbackHandler(svc *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, now: time.Now}
}

// Check handles POST /api/check
// Not finding a record is a normal response, not an error
func (h *FeedbackHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req models.CheckRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.AppErrorResponse(w, r, apperrors.NewInvalidArgument("body", "Invalid JSON"))
		return
	}

	rec, err := h.svc.Lookup(r.Context(), req.ClientID)
	if err != nil {
		middleware.AppErrorResponse(w, r, err)
		return
	}

	if rec == nil {
		middleware.JSONResponse(w, http.StatusOK, models.CheckResponse{Exists: false})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CheckResponse{
		Exists: true,
		Record: rec,
	})
}

// Submit handles POST /api/submit
// Creates the client's feedback or replaces it if it already exists
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.AppErrorResponse(w, r, apperrors.NewInvalidArgument("body", "Invalid JSON"))
		return
	}

	result, err := h.svc.Submit(r.Context(), feedback.Submission{
		ClientID:   req.ClientID,
		Ratings:    req.Ratings,
		Comment:    req.Comment,
		Name:       req.Name,
		Department: req.Department,
		UserAgent:  r.UserAgent(),
	})
	if err != nil {
		middleware.AppErrorResponse(w, r, err)
		return
	}

	message := "Feedback submitted successfully"
	if result.WasUpdate {
		message = "Feedback updated successfully"
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponse{
		Success:   true,
		WasUpdate: result.WasUpdate,
		RecordID:  result.RecordID,
		Message:   message,
	})
}

// Report handles GET /api/report
func (h *FeedbackHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Report(r.Context())
	if err != nil {
		middleware.AppErrorResponse(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, report)
}

// Reset handles POST /api/reset
// Deletes every record. Confirmation is the caller's job.
func (h *FeedbackHandler) Reset(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Reset(r.Context())
	if err != nil {
		middleware.AppErrorResponse(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Success:      true,
		DeletedCount: n,
		Message:      fmt.Sprintf("Deleted %d feedback records", n),
	})
}

// Export handles GET /api/report/export?format=csv|json
// Returns the report as a file download (csv is the default)
func (h *FeedbackHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = feedback.FormatCSV
	}

	var contentType string
	switch format {
	case feedback.FormatCSV:
		contentType = "text/csv; charset=utf-8"
	case feedback.FormatJSON:
		contentType = "application/json"
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "format must be one of: csv, json")
		return
	}

	report, err := h.svc.Report(r.Context())
	if err != nil {
		middleware.AppErrorResponse(w, r, err)
		return
	}

	// Render fully before writing headers so a failure can still be a 500
	var buf bytes.Buffer
	if format == feedback.FormatCSV {
		err = feedback.WriteCSV(&buf, report.Records)
	} else {
		err = feedback.WriteJSON(&buf, report)
	}
	if err != nil {
		middleware.AppErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, feedback.ExportFilename(format, h.now())))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Error().Err(err).Str("format", format).Msg("failed to write export")
	}
}
