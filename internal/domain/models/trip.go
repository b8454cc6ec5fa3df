package models

import (
	"time"

	"travelsuggester/internal/domain"
)

// Trip is a user travel request paired with its generated plan.
type Trip struct {
	ID            domain.ID `json:"id"`
	TripNumber    string    `json:"trip_number"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureTime string    `json:"departure_time"`
	Mode          string    `json:"mode"`
	TravelPlan    string    `json:"travel_plan"`
	CreatedAt     time.Time `json:"created_at"`
}

type TripInput struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	Mode          string `json:"mode"`
}
