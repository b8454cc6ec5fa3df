package models

import (
	"time"

	"travelsuggester/internal/domain"
)

// Review is a rating and comment against a place. PlaceID is a weak reference.
type Review struct {
	ID        domain.ID `json:"id"`
	PlaceID   domain.ID `json:"place_id"`
	UserName  string    `json:"user_name"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewInput struct {
	PlaceID  domain.ID `json:"place_id"`
	UserName string    `json:"user_name"`
	Rating   float64   `json:"rating"`
	Comment  string    `json:"comment"`
}

// RatingSummary is the aggregate of a place's review set.
type RatingSummary struct {
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviews_count"`
}
