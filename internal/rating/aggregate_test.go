package rating

import (
	"math"
	"testing"

	"travelsuggester/internal/domain"
	"travelsuggester/internal/domain/models"
)

func reviews(ratings ...float64) []models.Review {
	out := make([]models.Review, 0, len(ratings))
	for i, r := range ratings {
		out = append(out, models.Review{ID: domain.ID(i + 1), PlaceID: 1, Rating: r})
	}
	return out
}

func TestAggregateEmptyKeepsValues(t *testing.T) {
	if _, ok := Aggregate(nil); ok {
		t.Fatalf("expected no summary for an empty review set")
	}
}

func TestAggregateMeanAndCount(t *testing.T) {
	cases := []struct {
		name    string
		ratings []float64
		want    float64
	}{
		{"single", []float64{4}, 4},
		{"two", []float64{4, 5}, 4.5},
		{"thirds", []float64{5, 4, 4}, 4.3},
		{"tie rounds to even down", []float64{4.0, 4.5}, 4.2},
		{"tie rounds to even up", []float64{3.5, 4.0}, 3.8},
		{"zeros", []float64{0, 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Aggregate(reviews(tc.ratings...))
			if !ok {
				t.Fatalf("expected summary")
			}
			if got.Rating != tc.want {
				t.Fatalf("rating = %v, want %v", got.Rating, tc.want)
			}
			if got.ReviewsCount != len(tc.ratings) {
				t.Fatalf("count = %d, want %d", got.ReviewsCount, len(tc.ratings))
			}
		})
	}
}

func TestRound1(t *testing.T) {
	cases := map[float64]float64{
		4.25:   4.2,
		4.26:   4.3,
		4.449:  4.4,
		3.75:   3.8,
		-1.25:  -1.2,
		4.9999: 5.0,
	}
	for in, want := range cases {
		if got := Round1(in); got != want {
			t.Errorf("Round1(%v) = %v, want %v", in, got, want)
		}
	}
	if !math.IsNaN(Round1(math.NaN())) {
		t.Errorf("expected NaN to pass through")
	}
}

func TestValidate(t *testing.T) {
	for _, v := range []float64{0, 2.5, 5} {
		if err := Validate(v, "rating"); err != nil {
			t.Errorf("Validate(%v) unexpected error %v", v, err)
		}
	}
	for _, v := range []float64{-0.1, 5.01, math.NaN()} {
		err := Validate(v, "rating")
		if !domain.IsValidation(err) {
			t.Errorf("Validate(%v) = %v, want validation error", v, err)
		}
	}
}

func TestIsPopular(t *testing.T) {
	if IsPopular(4.49) {
		t.Fatalf("4.49 must not be popular")
	}
	if !IsPopular(4.5) || !IsPopular(5) {
		t.Fatalf("4.5 and above must be popular")
	}
}
