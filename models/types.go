// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Rating categories, in the order they appear on the form
const (
	CategoryFood                    = "food"
	CategoryVenue                   = "venue"
	CategoryDecor                   = "decor"
	CategoryPhotobooth              = "photobooth"
	CategoryGiveaways               = "giveaways"
	CategoryEmcees                  = "emcees"
	CategoryGames                   = "games"
	CategoryDepartmentPresentations = "department_presentations"
	CategoryRaffle                  = "raffle"
	CategoryLoyaltyAwards           = "loyalty_awards"
)

// Categories lists every rating category. All of them are mandatory.
var Categories = []string{
	CategoryFood,
	CategoryVenue,
	CategoryDecor,
	CategoryPhotobooth,
	CategoryGiveaways,
	CategoryEmcees,
	CategoryGames,
	CategoryDepartmentPresentations,
	CategoryRaffle,
	CategoryLoyaltyAwards,
}

// Rating bounds (inclusive)
const (
	MinRating = 1
	MaxRating = 5
)

// Report placeholders. Never written to storage.
const (
	AnonymousName         = "Anonymous"
	UnspecifiedDepartment = "Not Specified"
)

// Request types

// Fields are typed loosely so that wrong JSON types surface as
// validation errors naming the field rather than a generic decode failure.
type CheckRequest struct {
	ClientID any `json:"client_id"`
}

type SubmitRequest struct {
	ClientID   any            `json:"client_id"`
	Ratings    any    `json:"ratings"`
	Comment    string         `json:"comment"`
	Name       string         `json:"name"`
	Department string         `json:"department"`
}

// Response types

type CheckResponse struct {
	Exists bool            `json:"exists"`
	Record *FeedbackRecord `json:"record,omitempty"`
}

type SubmitResponse struct {
	Success   bool   `json:"success"`
	WasUpdate bool   `json:"was_update"`
	RecordID  int64  `json:"record_id"`
	Message   string `json:"message"`
}

type ResetResponse struct {
	Success      bool   `json:"success"`
	DeletedCount int64  `json:"deleted_count"`
	Message      string `json:"message"`
}

type ReportResponse struct {
	Stats   ReportStats    `json:"stats"`
	Records []ReportRecord `json:"records"`
}

// Domain types

// Ratings holds one score per category
type Ratings struct {
	Food                    int `json:"food"`
	Venue                   int `json:"venue"`
	Decor                   int `json:"decor"`
	Photobooth              int `json:"photobooth"`
	Giveaways               int `json:"giveaways"`
	Emcees                  int `json:"emcees"`
	Games                   int `json:"games"`
	DepartmentPresentations int `json:"department_presentations"`
	Raffle                  int `json:"raffle"`
	LoyaltyAwards           int `json:"loyalty_awards"`
}

// Get returns the score for a category, or 0 for an unknown category
func (r Ratings) Get(category string) int {
	switch category {
	case CategoryFood:
		return r.Food
	case CategoryVenue:
		return r.Venue
	case CategoryDecor:
		return r.Decor
	case CategoryPhotobooth:
		return r.Photobooth
	case CategoryGiveaways:
		return r.Giveaways
	case CategoryEmcees:
		return r.Emcees
	case CategoryGames:
		return r.Games
	case CategoryDepartmentPresentations:
		return r.DepartmentPresentations
	case CategoryRaffle:
		return r.Raffle
	case CategoryLoyaltyAwards:
		return r.LoyaltyAwards
	}
	return 0
}

// Set stores the score for a category. Unknown categories are ignored.
func (r *Ratings) Set(category string, value int) {
	switch category {
	case CategoryFood:
		r.Food = value
	case CategoryVenue:
		r.Venue = value
	case CategoryDecor:
		r.Decor = value
	case CategoryPhotobooth:
		r.Photobooth = value
	case CategoryGiveaways:
		r.Giveaways = value
	case CategoryEmcees:
		r.Emcees = value
	case CategoryGames:
		r.Games = value
	case CategoryDepartmentPresentations:
		r.DepartmentPresentations = value
	case CategoryRaffle:
		r.Raffle = value
	case CategoryLoyaltyAwards:
		r.LoyaltyAwards = value
	}
}

// FeedbackRecord is one stored submission
type FeedbackRecord struct {
	ID         int64     `json:"id"`
	ClientID   string    `json:"client_id"`
	Ratings    Ratings   `json:"ratings"`
	Comment    *string   `json:"comment"`
	Name       *string   `json:"name"`
	Department *string   `json:"department"`
	UserAgent  *string   `json:"-"` // Never expose in JSON
	Revision   int       `json:"revision"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReportStats summarizes every stored record
type ReportStats struct {
	Total            int                `json:"total"`
	Averages         map[string]float64 `json:"averages"`
	WithCommentCount int                `json:"with_comment_count"`
	WithNameCount    int                `json:"with_name_count"`
	Departments      []string           `json:"departments"`
}

// ReportRecord is a FeedbackRecord reshaped for the admin report, with
// placeholders filled in for missing optional fields
type ReportRecord struct {
	ID          int64     `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Ratings     Ratings   `json:"ratings"`
	Comment     string    `json:"comment"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}
