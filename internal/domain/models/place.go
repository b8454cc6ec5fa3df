package models

import (
	"time"

	"travelsuggester/internal/domain"
)

// Place is a point of interest. Rating and ReviewsCount are derived from reviews once any exist.
type Place struct {
	ID           domain.ID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Rating       float64   `json:"rating"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	ReviewsCount int       `json:"reviews_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (p Place) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// PlaceInput is the create payload for a place.
type PlaceInput struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Rating       float64  `json:"rating"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	ReviewsCount int      `json:"-"`
}

func (in PlaceInput) Place() Place {
	return Place{
		Name:         in.Name,
		Category:     in.Category,
		Rating:       in.Rating,
		Description:  in.Description,
		Location:     in.Location,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		ReviewsCount: in.ReviewsCount,
	}
}

// Float returns a pointer to v, for optional coordinates.
func Float(v float64) *float64 {
	return &v
}
