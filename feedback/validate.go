// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feedback

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/danielhkuo/party-feedback/apperrors"
	"github.com/danielhkuo/party-feedback/models"
)

// ParseClientID checks that v is a non-empty string and returns it
func ParseClientID(v any) (string, error) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", apperrors.NewInvalidArgument("client_id", "Invalid client_id")
	}
	return s, nil
}

// ParseRatings validates JSON-decoded ratings, which must be an object.
// Categories are checked in form order and the first offending one is
// named in the error.
func ParseRatings(v any) (models.Ratings, error) {
	var ratings models.Ratings
	raw, ok := v.(map[string]any)
	if !ok || raw == nil {
		return ratings, apperrors.NewInvalidArgument("ratings", "Ratings are required")
	}

	for _, category := range models.Categories {
		v, ok := raw[category]
		if !ok {
			return ratings, apperrors.NewInvalidArgument(category,
				fmt.Sprintf("Missing rating for %s.", category))
		}
		score, ok := ratingValue(v)
		if !ok {
			return ratings, apperrors.NewInvalidArgument(category,
				fmt.Sprintf("Invalid rating for %s. Must be between %d and %d.", category, models.MinRating, models.MaxRating))
		}
		ratings.Set(category, score)
	}

	if len(raw) != len(models.Categories) {
		var unknown []string
		for k := range raw {
			if ratings.Get(k) == 0 {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		return ratings, apperrors.NewInvalidArgument(unknown[0],
			fmt.Sprintf("Unknown rating category %s.", unknown[0]))
	}

	return ratings, nil
}

// ratingValue accepts whole numbers in range. JSON numbers decode as
// float64; the integer cases cover callers building the map in Go.
func ratingValue(v any) (int, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, false
	}
	if f != math.Trunc(f) || f < models.MinRating || f > models.MaxRating {
		return 0, false
	}
	return int(f), true
}

// optionalText trims s and returns nil when nothing is left
func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
