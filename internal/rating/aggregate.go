// Package rating derives a place's rating summary from its reviews.
package rating

import (
	"math"
	"strconv"

	"travelsuggester/internal/domain"
	"travelsuggester/internal/domain/models"
)

const (
	MinRating = 0.0
	MaxRating = 5.0

	// PopularThreshold is the minimum rating for a popular destination.
	PopularThreshold = 4.5
)

// Aggregate recomputes the summary from the full review set: the arithmetic
// mean rounded to one decimal and the review count. ok is false for an empty
// set, in which case the place keeps its current values.
func Aggregate(reviews []models.Review) (summary models.RatingSummary, ok bool) {
	if len(reviews) == 0 {
		return models.RatingSummary{}, false
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return models.RatingSummary{
		Rating:       Round1(sum / float64(len(reviews))),
		ReviewsCount: len(reviews),
	}, true
}

// Round1 rounds to one decimal place, half-to-even on the exact binary value.
func Round1(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	out, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return out
}

// Validate rejects ratings outside [MinRating, MaxRating].
func Validate(v float64, field string) error {
	if math.IsNaN(v) || v < MinRating || v > MaxRating {
		return domain.ValidationError{Field: field, Msg: "must be between 0 and 5"}
	}
	return nil
}

// IsPopular reports whether a rating qualifies as a popular destination.
func IsPopular(v float64) bool {
	return v >= PopularThreshold
}
